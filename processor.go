package iso8583

import (
	"context"
	"log/slog"

	"golang.org/x/sync/errgroup"
)

// Processor parses many messages concurrently with a bounded number of
// goroutines.
type Processor struct {
	parser       Parser
	concurrency  int         // Max number of messages parsed at once
	errorHandler func(error) // Called for every failed message
	logger       *slog.Logger
}

// NewProcessor creates a Processor that parses with parser, typically a
// *MainCodec or *DF61Codec.
func NewProcessor(parser Parser, opts ...ProcessorOption) *Processor {
	p := &Processor{
		parser:      parser,
		concurrency: 4,
		logger:      slog.Default(),
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.errorHandler == nil {
		p.errorHandler = func(err error) {
			p.logger.Error("processor error", "error", err)
		}
	}
	return p
}

// Process parses a single message.
func (p *Processor) Process(text string) (*Message, error) {
	return p.parser.Parse(text)
}

// ProcessBatch parses every text and returns the messages in input order.
// Failed inputs leave a nil entry; the returned error is the *BatchError of
// the lowest failing index. Cancelling ctx stops new work from starting.
func (p *Processor) ProcessBatch(ctx context.Context, texts []string) ([]*Message, error) {
	results := make([]*Message, len(texts))
	errs := make([]error, len(texts))

	g := errgroup.Group{}
	g.SetLimit(p.concurrency)
	for i, text := range texts {
		if ctx.Err() != nil {
			break
		}
		i, text := i, text
		g.Go(func() error {
			msg, err := p.parser.Parse(text)
			if err != nil {
				errs[i] = &BatchError{Index: i, Err: err}
				p.errorHandler(errs[i])
				return nil
			}
			results[i] = msg
			return nil
		})
	}
	_ = g.Wait()

	if err := ctx.Err(); err != nil {
		return results, err
	}
	for _, err := range errs {
		if err != nil {
			return results, err
		}
	}
	return results, nil
}

// ProcessStream parses texts from input and sends the messages to output
// until input is closed or ctx is cancelled. Output order follows completion,
// not input. Failed messages go to the error handler and are skipped.
func (p *Processor) ProcessStream(ctx context.Context, input <-chan string, output chan<- *Message) error {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.concurrency)

	index := 0
loop:
	for {
		select {
		case <-ctx.Done():
			break loop
		case text, ok := <-input:
			if !ok {
				break loop
			}
			i := index
			index++
			g.Go(func() error {
				msg, err := p.parser.Parse(text)
				if err != nil {
					p.errorHandler(&BatchError{Index: i, Err: err})
					return nil
				}
				select {
				case output <- msg:
					return nil
				case <-gctx.Done():
					return gctx.Err()
				}
			})
		}
	}

	err := g.Wait()
	if ctx.Err() != nil {
		return ctx.Err()
	}
	return err
}
