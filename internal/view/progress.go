package view

import (
	"fmt"
	"math"

	"github.com/BuzzLyutic/task-list/internal/model"
)

type Progress struct {
	Total     int `json:"total"`
	Completed int `json:"completed"`
	Percent   int `json:"percent"`
}

func ComputeProgress(tasks []model.Task) Progress {
	p := Progress{Total: len(tasks)}
	for _, t := range tasks {
		if t.Completed {
			p.Completed++
		}
	}
	if p.Total > 0 {
		p.Percent = int(math.Round(float64(p.Completed) / float64(p.Total) * 100))
	}
	return p
}

// Summary is the text shown under the progress bar.
func (p Progress) Summary() string {
	return fmt.Sprintf("%d of %d tasks completed", p.Completed, p.Total)
}
