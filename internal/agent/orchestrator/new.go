package orchestrator

import (
	"diary-agent/internal/agent/classifier"
	"diary-agent/internal/knowledge"
	pkgLog "diary-agent/pkg/log"
)

// Orchestrator routes a raw utterance to the right capability based on its
// classified intent.
type Orchestrator struct {
	l          pkgLog.Logger
	classifier classifier.Classifier
	knowledge  knowledge.UseCase
}

func New(l pkgLog.Logger, cls classifier.Classifier, kn knowledge.UseCase) *Orchestrator {
	return &Orchestrator{
		l:          l,
		classifier: cls,
		knowledge:  kn,
	}
}
