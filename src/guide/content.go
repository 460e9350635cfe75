// Package guide holds the visualization-training guide and its notebook.
package guide

// Stage is one level of the training programme.
type Stage struct {
	Name  string
	Steps []string
}

var stages = []Stage{
	{
		Name: "Stage 1: Basic visualization practice",
		Steps: []string{
			"Imagine simple shapes (circle, triangle, cube, etc.)",
			"Close your eyes and hold the image for 1 minute",
			"Focus on details such as color, size and texture",
		},
	},
	{
		Name: "Stage 2: Static image visualization",
		Steps: []string{
			"Imagine a familiar object or place (e.g. an apple, your home)",
			"Hold the image for 2-3 minutes",
			"Add details (color, shape, texture)",
		},
	},
	{
		Name: "Stage 3: Dynamic image visualization",
		Steps: []string{
			"Imagine something in motion (e.g. a flowing river, a bird in flight)",
			"Hold the scene for 3-5 minutes",
			"Focus on the details of the movement",
		},
	},
	{
		Name: "Stage 4: Complex scene visualization",
		Steps: []string{
			"Imagine a scene with many elements (e.g. a busy street, a landscape)",
			"Hold the scene for 5 minutes or more",
			"Add multisensory elements such as sounds and smells, not only visuals",
		},
	},
	{
		Name: "Stage 5: Abstract concept visualization",
		Steps: []string{
			"Express abstract concepts such as emotions or ideas as images",
			"Hold and develop the image for 7-10 minutes",
			"Expand your imagination by linking it to personal meaning",
		},
	},
}

var tips = []string{
	"Practice 10-15 minutes every day",
	"Start in a comfortable posture and a quiet environment",
	"Gradually increase difficulty and duration",
	"Record what you visualized in writing or drawing afterwards",
	"Use meditation apps or guided audio",
}

var progressChecks = []string{
	"Record the clarity, duration and complexity of your visualizations",
	"Check your progress with a weekly self-assessment",
	"Observe changes in other cognitive functions (memory, creativity, etc.)",
}

func Stages() []Stage {
	out := make([]Stage, len(stages))
	copy(out, stages)
	return out
}

func Tips() []string {
	return append([]string(nil), tips...)
}

func ProgressChecks() []string {
	return append([]string(nil), progressChecks...)
}

func IsStage(name string) bool {
	for _, s := range stages {
		if s.Name == name {
			return true
		}
	}
	return false
}
