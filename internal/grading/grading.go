package grading

import (
	"strings"

	"quizbank/internal/entity"
)

// Normalize приводит ответ к виду для сравнения: обрезает пробелы
// по краям и опускает регистр. Никакой другой нормализации нет.
func Normalize(answer string) string {
	return strings.ToLower(strings.TrimSpace(answer))
}

// Score сравнивает отправленные ответы с эталонными. Ключ карты - id вопроса.
// Вопрос без отправленного ответа пропускается, но входит в total:
// неотвеченные вопросы все равно считаются в знаменателе.
func Score(questions []entity.Question, answers map[int]string) (score, total int) {
	total = len(questions)

	for _, question := range questions {
		answer, ok := answers[question.ID]
		if !ok {
			continue
		}

		if Normalize(answer) == Normalize(question.CorrectAnswer) {
			score++
		}
	}

	return score, total
}
