package upload

import (
	"context"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// batchSize bounds how many file reads are in flight at once, keeping peak
// memory under control for multi-file drops.
const batchSize = 3

// Result reports the outcome for one file of a batch.
type Result struct {
	// Name is the original file name.
	Name string
	// DataURI is the encoded representation; empty when Err is set.
	DataURI string
	// Err is the validation, encode or commit failure for this file.
	Err error
}

// CommitFunc stores one successfully encoded file.
type CommitFunc func(ctx context.Context, name, dataURI string) error

// Pipeline validates, encodes and commits uploaded files. One file's failure
// never affects its siblings; outcomes are reported per file.
type Pipeline struct {
	limits Limits
	commit CommitFunc
	log    *zap.Logger
}

// NewPipeline constructs a Pipeline applying the given validation gate before
// any bytes are read. A nil logger is replaced with a no-op logger.
func NewPipeline(limits Limits, commit CommitFunc, log *zap.Logger) *Pipeline {
	if log == nil {
		log = zap.NewNop()
	}
	return &Pipeline{limits: limits, commit: commit, log: log}
}

// Process runs every file through validate, encode and commit, handling at
// most batchSize files concurrently. Results are indexed by submission order;
// commit order within a batch is completion order.
func (p *Pipeline) Process(ctx context.Context, files []File) []Result {
	results := make([]Result, len(files))

	for start := 0; start < len(files); start += batchSize {
		end := start + batchSize
		if end > len(files) {
			end = len(files)
		}

		// A plain group, not WithContext: a failed sibling must not cancel
		// the rest of the batch.
		var g errgroup.Group
		for i := start; i < end; i++ {
			i := i
			g.Go(func() error {
				results[i] = p.processOne(ctx, files[i])
				return nil
			})
		}
		_ = g.Wait()
	}

	return results
}

// processOne handles a single file end to end.
func (p *Pipeline) processOne(ctx context.Context, f File) Result {
	res := Result{Name: f.Name()}

	if err := p.limits.Validate(f); err != nil {
		p.log.Warn("rejected upload",
			zap.String("file", f.Name()),
			zap.String("type", f.ContentType()),
			zap.Int64("size", f.Size()),
			zap.Error(err),
		)
		res.Err = err
		return res
	}

	dataURI, err := EncodeFile(f)
	if err != nil {
		p.log.Warn("failed to encode upload", zap.String("file", f.Name()), zap.Error(err))
		res.Err = err
		return res
	}

	if err := p.commit(ctx, f.Name(), dataURI); err != nil {
		p.log.Warn("failed to store upload", zap.String("file", f.Name()), zap.Error(err))
		res.Err = err
		return res
	}

	p.log.Info("stored upload", zap.String("file", f.Name()), zap.Int("encoded_size", len(dataURI)))
	res.DataURI = dataURI
	return res
}
