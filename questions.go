package main

import (
	"crypto/rand"
)

const optionsPerQuestion = 4

// answerResult records one player's submission for a question.
type answerResult struct {
	Answer    string  `json:"answer"`
	IsCorrect bool    `json:"isCorrect"`
	TimeSpent float64 `json:"timeSpent"`
}

// question is a single round of a multiplayer game. Results accumulate as
// players answer and are never removed once recorded.
type question struct {
	FlagURL       string                  `json:"flagUrl"`
	Options       []string                `json:"options"`
	CorrectAnswer string                  `json:"correctAnswer"`
	BlurAmount    int                     `json:"blurAmount"`
	Results       map[string]answerResult `json:"results,omitempty"`
}

// questionSource generates the question sequence for a new game.
type questionSource interface {
	Generate(mode string, count int) []*question
}

type flagQuestionSource struct{}

func (flagQuestionSource) Generate(mode string, count int) []*question {
	pool := flagsForMode(mode)

	order := shuffledIndices(len(pool))

	if count > len(pool) {
		count = len(pool)
	}

	questions := make([]*question, 0, count)
	for i := 0; i < count; i++ {
		correct := pool[order[i]]

		// Decoy options come from the same dataset, skipping the answer.
		options := make([]string, 0, optionsPerQuestion)
		options = append(options, correct.Name)
		for _, j := range shuffledIndices(len(pool)) {
			if len(options) == optionsPerQuestion {
				break
			}
			if pool[j].Name == correct.Name {
				continue
			}
			options = append(options, pool[j].Name)
		}

		shuffleStrings(options)

		questions = append(questions, &question{
			FlagURL:       correct.URL,
			Options:       options,
			CorrectAnswer: correct.Name,
			BlurAmount:    0,
		})
	}

	return questions
}

// shuffledIndices returns 0..n-1 in random order, using a Fisher-Yates
// shuffle backed by crypto/rand.
func shuffledIndices(n int) []int {
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	for i := n - 1; i > 0; i-- {
		var b [2]byte
		if _, err := rand.Read(b[:]); err != nil {
			continue
		}
		j := (int(b[0])<<8 | int(b[1])) % (i + 1)
		order[i], order[j] = order[j], order[i]
	}
	return order
}

func shuffleStrings(s []string) {
	for i := len(s) - 1; i > 0; i-- {
		var b [2]byte
		if _, err := rand.Read(b[:]); err != nil {
			continue
		}
		j := (int(b[0])<<8 | int(b[1])) % (i + 1)
		s[i], s[j] = s[j], s[i]
	}
}
