package sitekit

import (
	"github.com/lexport/go-sitekit/components/evaluation"
	"github.com/lexport/go-sitekit/components/practices"
	"github.com/lexport/go-sitekit/pkg/web"
)

// Mux is the routing contract the components mount onto; *http.ServeMux
// satisfies it.
type Mux = web.Mux

// EvaluationOption configures the evaluation-form component.
type EvaluationOption = evaluation.OptionFn

// PracticesOption configures the practice-areas component.
type PracticesOption = practices.OptionFn

// NewEvaluation exposes the evaluation component constructor from the root
// package for convenience.
func NewEvaluation(options ...EvaluationOption) *evaluation.Component {
	return evaluation.New(options...)
}

// NewPractices exposes the practice-areas component constructor from the root
// package for convenience.
func NewPractices(options ...PracticesOption) *practices.Component {
	return practices.New(options...)
}

// Mount registers both site components under basePath on mux and returns the
// registered patterns.
func Mount(mux Mux, basePath string, eval *evaluation.Component, areas *practices.Component) ([]string, error) {
	patterns, err := eval.RegisterRoutes(mux, basePath)
	if err != nil {
		return nil, err
	}
	more, err := areas.RegisterRoutes(mux, basePath)
	if err != nil {
		return nil, err
	}
	return append(patterns, more...), nil
}
