package download

import (
	"context"
	"errors"
	"io"

	"golang.org/x/sync/errgroup"
)

// Chunk pump settings
const (
	ChunkSize      = 64 * 1024
	ChunkQueueSize = 16
)

// pumpStream copies src to dst through a bounded chunk queue. One goroutine
// reads chunks, the other writes them and calls observe with the cumulative
// byte count and the declared total. The first failure on either side stops
// both and is returned as is. If the pump stops before src is drained, src is
// closed so a pending Read returns. dst is not closed.
func pumpStream(ctx context.Context, src io.ReadCloser, dst io.Writer, total int64, observe func(received, total int64)) (int64, error) {
	g, gctx := errgroup.WithContext(ctx)
	chunks := make(chan []byte, ChunkQueueSize)

	g.Go(func() error {
		defer close(chunks)
		stop := context.AfterFunc(gctx, func() { _ = src.Close() })
		defer stop()

		for {
			if err := gctx.Err(); err != nil {
				return err
			}

			buf := make([]byte, ChunkSize)
			n, err := src.Read(buf)
			if n > 0 {
				select {
				case chunks <- buf[:n]:
				case <-gctx.Done():
					return gctx.Err()
				}
			}
			if errors.Is(err, io.EOF) {
				return nil
			}
			if err != nil {
				return err
			}
		}
	})

	var received int64
	g.Go(func() error {
		for chunk := range chunks {
			if _, err := dst.Write(chunk); err != nil {
				return err
			}
			received += int64(len(chunk))
			if observe != nil {
				observe(received, total)
			}
		}
		return nil
	})

	err := g.Wait()
	return received, err
}
