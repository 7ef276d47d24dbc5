package pipeline

import (
	"github.com/nguyentantai21042004/soap-notes/internal/config"
	"github.com/nguyentantai21042004/soap-notes/internal/logger"
	"github.com/nguyentantai21042004/soap-notes/internal/media"
	"github.com/nguyentantai21042004/soap-notes/internal/segmenter"
	"github.com/nguyentantai21042004/soap-notes/internal/soap"
	"github.com/nguyentantai21042004/soap-notes/internal/store"
	"github.com/nguyentantai21042004/soap-notes/internal/transcriber"
)

// Deps are the collaborators a Processor drives. They are built once per
// process by the caller.
type Deps struct {
	Loader      media.Loader
	Transcriber transcriber.Transcriber
	Segmenter   segmenter.Segmenter
	Classifier  *soap.Classifier
	Store       store.RecordStore
}

type implProcessor struct {
	paths  config.PathsConfig
	deps   Deps
	logger logger.Logger
}

// New creates a new Processor instance
func New(paths config.PathsConfig, deps Deps, log logger.Logger) Processor {
	if deps.Classifier == nil {
		deps.Classifier = soap.NewClassifier(soap.KeywordSets{})
	}
	return &implProcessor{
		paths:  paths,
		deps:   deps,
		logger: log,
	}
}
