// Command sitekit-intake submits a case evaluation request from the terminal,
// prompting for the same six fields the web form collects and running the same
// validation before anything goes over the wire.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/AlecAivazis/survey/v2"

	"github.com/lexport/go-sitekit/components/evaluation"
)

func main() {
	var (
		endpointFlag = flag.String("endpoint", "", "Intake endpoint URL")
		timeoutFlag  = flag.Duration("timeout", 15*time.Second, "Submission timeout")
	)
	flag.Parse()

	if *endpointFlag == "" {
		log.Fatal("an -endpoint is required")
	}

	values, err := promptValues()
	if err != nil {
		log.Fatalf("prompt: %v", err)
	}

	submitter := evaluation.NewSubmitter(
		evaluation.WithIntakeEndpoint(*endpointFlag),
	)

	ctx, cancel := context.WithTimeout(context.Background(), *timeoutFlag)
	defer cancel()

	err = submitter.Submit(ctx, evaluation.NewForm(), values)

	var validationErr *evaluation.ValidationError
	switch {
	case err == nil:
		fmt.Println("Submitted. Our team will contact you within one business day.")
	case errors.As(err, &validationErr):
		for field, msg := range validationErr.Fields {
			fmt.Printf("  %s: %s\n", evaluation.LabelFor(field), msg)
		}
		log.Fatal("submission blocked by validation")
	default:
		log.Fatalf("submission failed: %v", err)
	}
}

func promptValues() (map[string]string, error) {
	values := make(map[string]string, len(evaluation.FieldNames()))
	for _, name := range evaluation.FieldNames() {
		field := name
		prompt := survey.Prompt(&survey.Input{Message: evaluation.LabelFor(field) + ":"})
		if field == evaluation.FieldMessage {
			prompt = &survey.Multiline{Message: evaluation.LabelFor(field) + ":"}
		}

		var answer string
		err := survey.AskOne(prompt, &answer, survey.WithValidator(func(ans interface{}) error {
			value, _ := ans.(string)
			if msg := evaluation.ValidateField(field, value); msg != "" {
				return errors.New(msg)
			}
			return nil
		}))
		if err != nil {
			return nil, err
		}
		values[field] = answer
	}
	return values, nil
}
