package iso8583_test

import (
	"context"
	"errors"
	"sort"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	iso8583 "github.com/mkadit/iso8583-df61"
)

func TestProcessBatch(t *testing.T) {
	codecs := newCodecs(t, iso8583.WithHeader(true))

	var mtx sync.Mutex
	var failed []error
	p := iso8583.NewProcessor(codecs.Main,
		iso8583.WithConcurrency(2),
		iso8583.WithProcessorLogger(quietLogger()),
		iso8583.WithErrorHandler(func(err error) {
			mtx.Lock()
			failed = append(failed, err)
			mtx.Unlock()
		}),
	)

	t.Run("all valid", func(t *testing.T) {
		texts := []string{sale0100, sale0110, reversal0302, reversal0312, signOn0810}
		msgs, err := p.ProcessBatch(context.Background(), texts)
		require.NoError(t, err)
		require.Len(t, msgs, len(texts))
		for i, msg := range msgs {
			require.Equal(t, texts[i], msg.String())
		}
	})

	t.Run("failures keep input order", func(t *testing.T) {
		texts := []string{sale0100, "garbage", sale0110, "{0,5}short"}
		msgs, err := p.ProcessBatch(context.Background(), texts)
		require.Error(t, err)

		var be *iso8583.BatchError
		require.True(t, errors.As(err, &be))
		require.Equal(t, 1, be.Index)
		require.ErrorIs(t, err, iso8583.ErrMalformedHeader)

		require.NotNil(t, msgs[0])
		require.Nil(t, msgs[1])
		require.NotNil(t, msgs[2])
		require.Nil(t, msgs[3])

		mtx.Lock()
		require.Len(t, failed, 2)
		mtx.Unlock()
	})

	t.Run("cancelled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := p.ProcessBatch(ctx, []string{sale0100})
		require.ErrorIs(t, err, context.Canceled)
	})
}

func TestProcessStream(t *testing.T) {
	codecs := newCodecs(t)
	p := iso8583.NewProcessor(codecs.DF61,
		iso8583.WithConcurrency(3),
		iso8583.WithProcessorLogger(quietLogger()),
	)

	input := make(chan string)
	output := make(chan *iso8583.Message, 8)
	go func() {
		defer close(input)
		input <- df61Sale
		input <- "not a message"
		input <- "008000000000000000000000"
	}()

	require.NoError(t, p.ProcessStream(context.Background(), input, output))
	close(output)

	var sources []string
	for msg := range output {
		sources = append(sources, msg.Source)
	}
	sort.Strings(sources)
	require.Equal(t, []string{"008000000000000000000000", df61Sale}, sources)
}

func TestProcessStreamCancel(t *testing.T) {
	codecs := newCodecs(t)
	p := iso8583.NewProcessor(codecs.DF61, iso8583.WithProcessorLogger(quietLogger()))

	ctx, cancel := context.WithCancel(context.Background())
	input := make(chan string)
	done := make(chan error)
	go func() {
		done <- p.ProcessStream(ctx, input, make(chan *iso8583.Message))
	}()
	cancel()
	require.ErrorIs(t, <-done, context.Canceled)
}

func TestProcess(t *testing.T) {
	codecs := newCodecs(t)
	p := iso8583.NewProcessor(codecs.Main)
	msg, err := p.Process(signOn0800)
	require.NoError(t, err)
	require.Equal(t, "0800", msg.MTI)
}
