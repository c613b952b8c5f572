package practicegen

import (
	"fmt"
	"strings"
)

const systemPrompt = `你是一位经验丰富的小学老师，为学生出练习题。

要求：
- 题目紧扣指定的知识点和年级，难度符合要求。
- 题目表述清楚、自成一体，符合小学生的语言水平。
- 答案必须正确；解析要分步骤，讲给孩子能听懂。
- 题目之间不要重复，也不要和"已出过的题目"重复。
- 参考知识点的典型题型和常见错误来设计题目，干扰项要针对常见错误。`

// buildUserMessage renders one generation request from the input and
// config limits.
func buildUserMessage(input GenerateInput, cfg Config) string {
	p := input.Point

	var b strings.Builder
	fmt.Fprintf(&b, "知识点：%s\n", p.Name)
	if p.Description != "" {
		fmt.Fprintf(&b, "说明：%s\n", p.Description)
	}
	fmt.Fprintf(&b, "科目：%s\n", p.Subject.DisplayName())
	fmt.Fprintf(&b, "年级：%d年级\n", p.Grade)
	fmt.Fprintf(&b, "难度：%s\n", p.Difficulty.Label())
	if input.QuestionType != "" {
		fmt.Fprintf(&b, "题型：%s\n", input.QuestionType)
	}
	if len(p.Keywords) > 0 {
		fmt.Fprintf(&b, "关键词：%s\n", strings.Join(p.Keywords, "、"))
	}
	if len(p.TypicalQuestions) > 0 {
		fmt.Fprintf(&b, "典型题型：%s\n", strings.Join(p.TypicalQuestions, "；"))
	}
	if len(p.CommonMistakes) > 0 {
		fmt.Fprintf(&b, "常见错误：%s\n", strings.Join(p.CommonMistakes, "；"))
	}
	fmt.Fprintf(&b, "\n请出%d道题。\n", input.Count)

	avoid := input.AvoidTexts
	if cfg.MaxAvoidTexts > 0 && len(avoid) > cfg.MaxAvoidTexts {
		avoid = avoid[len(avoid)-cfg.MaxAvoidTexts:]
	}
	if len(avoid) > 0 {
		b.WriteString("\n已出过的题目：\n")
		for i, q := range avoid {
			fmt.Fprintf(&b, "%d. %s\n", i+1, q)
		}
	}
	return b.String()
}
