// Package catalog содержит статический пул задач для бинго-досок.
// Пул неизменяемый: сеется в БД один раз при старте приложения и дальше
// только читается.
package catalog

import "github.com/mkarwowski/bingoroom/internal/domain/models"

var scienceTasks = []string{
	"Read a popular science article and summarize it in three sentences",
	"Watch a documentary about space",
	"Learn ten new words in a foreign language",
	"Solve five math puzzles",
	"Explain photosynthesis to a friend",
	"Memorize the first ten elements of the periodic table",
	"Read a chapter of a non-fiction book",
	"Write a short note about a famous scientist",
	"Learn how a combustion engine works",
	"Find out what causes the northern lights",
	"Do a mental arithmetic drill for ten minutes",
	"Learn the capitals of ten countries",
	"Watch a lecture about evolution",
	"Build a simple electric circuit on paper",
	"Learn three constellations and find them in the sky",
	"Read about the history of the internet",
	"Explain why the sky is blue",
	"Learn how vaccines work",
	"Write down five facts about the human brain",
	"Learn the difference between a virus and a bacterium",
	"Calculate the area of your room",
	"Learn a keyboard shortcut you never used before",
	"Read a biography of an inventor for 20 minutes",
	"Learn how binary numbers work",
	"Find out how deep the Mariana Trench is",
	"Learn three theorems from school geometry",
	"Watch a video about black holes",
	"Learn how a compiler differs from an interpreter",
	"Read about the scientific method",
	"Explain the greenhouse effect in your own words",
	"Learn the phases of the Moon",
	"Solve a logic riddle",
	"Learn how DNA replication works",
	"Find out what the speed of sound is in water",
	"Read about an unsolved problem in mathematics",
	"Learn the difference between mass and weight",
	"Write a note about the history of the telescope",
	"Learn how tides work",
	"Read about the first computer programmers",
	"Learn what an algorithm complexity is",
	"Find three chemical reactions happening in your kitchen",
	"Learn how GPS determines a position",
	"Read about plate tectonics",
	"Explain how rainbows form",
	"Learn the names of five bones in the human body",
	"Find out how bees communicate",
	"Learn what entropy means",
	"Read about the history of zero",
	"Learn how an LED emits light",
	"Write down a question science cannot answer yet",
}

var sportTasks = []string{
	"Do 20 push-ups",
	"Take a 30-minute walk",
	"Do 30 squats",
	"Hold a plank for one minute",
	"Stretch for ten minutes",
	"Do 15 burpees",
	"Jump rope for five minutes",
	"Run one kilometer",
	"Do 20 lunges per leg",
	"Climb stairs for five minutes",
	"Do 25 sit-ups",
	"Ride a bike for 20 minutes",
	"Do a 10-minute yoga session",
	"Hold a wall sit for 45 seconds",
	"Do 15 tricep dips",
	"Dance to three songs without stopping",
	"Do 50 jumping jacks",
	"Practice balancing on one leg for two minutes",
	"Do 10 pull-ups or negatives",
	"Sprint 100 meters three times",
	"Do 20 mountain climbers",
	"Walk 8000 steps today",
	"Do 15 push-ups with a pause at the bottom",
	"Stretch your hamstrings for five minutes",
	"Do 30 calf raises",
	"Shadow-box for three rounds of two minutes",
	"Do 20 glute bridges",
	"Hold a side plank for 30 seconds per side",
	"Do 12 slow squats with perfect form",
	"Jog in place for ten minutes",
	"Do 20 high knees per leg",
	"Swim or simulate swim strokes for ten minutes",
	"Do 15 leg raises",
	"Take the stairs instead of the elevator all day",
	"Do 10 diamond push-ups",
	"Practice ten free throws or paper tosses",
	"Do 20 bicycle crunches",
	"Walk backwards for 200 meters",
	"Do three sets of 10 rows with a backpack",
	"Hold a deep squat for one minute",
	"Do 20 side lunges",
	"Skip for 200 meters",
	"Do 15 supermans",
	"Balance a ball or book on your head for a minute",
	"Do 10 slow push-ups with three-second descents",
	"Stretch your shoulders for five minutes",
	"Do 25 standing oblique crunches",
	"Hop on one leg 20 times per side",
	"Do a five-minute cooldown walk after exercise",
	"Beat your own record in any exercise above",
}

// All возвращает полный каталог: science занимает id 1..50, sport — 51..100.
func All() []models.Task {
	tasks := make([]models.Task, 0, len(scienceTasks)+len(sportTasks))

	for i, description := range scienceTasks {
		tasks = append(tasks, models.Task{
			ID:          i + 1,
			Description: description,
			Category:    models.CategoryScience,
		})
	}

	for i, description := range sportTasks {
		tasks = append(tasks, models.Task{
			ID:          len(scienceTasks) + i + 1,
			Description: description,
			Category:    models.CategorySport,
		})
	}

	return tasks
}
