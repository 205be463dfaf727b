package cli

import (
	"fmt"

	"github.com/charmbracelet/huh"

	"github.com/julianstephens/scentry/internal/models"
	"github.com/julianstephens/scentry/internal/quiz"
)

type QuizCmd struct {
	Retake bool `help:"Retake the quiz even if already complete."`
}

func (c *QuizCmd) Run(ctx *Context) error {
	a, err := loadApp(ctx)
	if err != nil {
		return err
	}

	if a.Profile().QuestionnaireComplete && !c.Retake {
		retake := false
		confirm := huh.NewForm(huh.NewGroup(
			huh.NewConfirm().
				Title("You've already completed the quiz. Retake it?").
				Value(&retake),
		))
		if err := confirm.Run(); err != nil {
			return err
		}
		if !retake {
			answers, err := ctx.Store.GetAnswers()
			if err != nil {
				return err
			}
			printRecommendations(quiz.GenerateRecommendations(answers))
			return nil
		}
	}

	engine := quiz.NewEngine()

	for {
		question := engine.Current()

		options := make([]huh.Option[string], len(question.Options))
		for i, opt := range question.Options {
			options[i] = huh.NewOption(fmt.Sprintf("%s - %s", opt.Label, opt.Description), opt.Value)
		}

		var value string
		form := huh.NewForm(huh.NewGroup(
			huh.NewSelect[string]().
				Title(question.Title).
				Description(question.Subtitle).
				Options(options...).
				Value(&value),
		))
		if err := form.Run(); err != nil {
			return err
		}

		if err := engine.Answer(question.ID, value); err != nil {
			return err
		}

		if engine.AtEnd() {
			break
		}
		if err := engine.Next(); err != nil {
			return err
		}
	}

	if err := engine.Finish(ctx.Store); err != nil {
		return err
	}
	if err := a.MarkQuestionnaireComplete(); err != nil {
		return err
	}

	printRecommendations(quiz.GenerateRecommendations(engine.Answers()))
	return nil
}

func printRecommendations(recs []models.Recommendation) {
	fmt.Println("\nYour scent profile:")
	for _, rec := range recs {
		fmt.Printf("\n%s\n  %s\n", rec.Title, rec.Description)
	}
}
