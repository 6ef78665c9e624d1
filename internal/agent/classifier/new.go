package classifier

import (
	"context"

	lru "github.com/hashicorp/golang-lru/v2"

	"diary-agent/internal/model"
	"diary-agent/pkg/llmprovider"
	"diary-agent/pkg/log"
)

//go:generate mockery --name Classifier
type Classifier interface {
	Classify(ctx context.Context, content string) (model.Classification, error)
}

// Generator is the slice of llmprovider.Manager the classifier needs.
type Generator interface {
	GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error)
}

type implClassifier struct {
	l         log.Logger
	generator Generator
	threshold float64
	cache     *lru.Cache[string, model.Classification]
}

var _ Classifier = &implClassifier{}

func New(l log.Logger, generator Generator, threshold float64, cacheSize int) (Classifier, error) {
	if cacheSize <= 0 {
		cacheSize = defaultCacheSize
	}
	cache, err := lru.New[string, model.Classification](cacheSize)
	if err != nil {
		return nil, err
	}

	if threshold <= 0 || threshold > 1 {
		threshold = defaultThreshold
	}

	return &implClassifier{
		l:         l,
		generator: generator,
		threshold: threshold,
		cache:     cache,
	}, nil
}
