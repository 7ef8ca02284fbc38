// Package console adapts an io.Reader and io.Writer to the line-based input and output
// the game talks through.
package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
)

type readResult struct {
	line string
	err  error
}

// Console reads a line only when ReadLine asks for one. A line that arrives for a read
// whose context is already done is dropped, so it never answers a later prompt.
type Console struct {
	logger *slog.Logger
	writer *bufio.Writer

	requests chan<- chan readResult
	stopped  <-chan struct{}
}

// New - starts the reader goroutine; it stops when ctx is done or input ends.
func New(ctx context.Context, logger *slog.Logger, reader io.Reader, writer io.Writer) *Console {
	log := logger.With("component", "console")
	requests := make(chan chan readResult)
	stopped := make(chan struct{})

	go serveLines(ctx, log, bufio.NewScanner(reader), requests, stopped)

	return &Console{
		logger:   log,
		writer:   bufio.NewWriter(writer),
		requests: requests,
		stopped:  stopped,
	}
}

func serveLines(
	ctx context.Context,
	logger *slog.Logger,
	scanner *bufio.Scanner,
	requests <-chan chan readResult,
	stopped chan<- struct{},
) {
	defer close(stopped)

	var closed error
	for {
		var reply chan readResult
		select {
		case reply = <-requests:
		case <-ctx.Done():
			return
		}

		if closed != nil {
			reply <- readResult{err: closed}
			continue
		}

		if !scanner.Scan() {
			closed = apperror.ErrInputClosed
			if err := scanner.Err(); err != nil {
				closed = fmt.Errorf("%w: %w", apperror.ErrInputClosed, err)
			}

			reply <- readResult{err: closed}
			continue
		}

		line := strings.TrimRight(scanner.Text(), "\r")
		logger.Debug("line read", "line", line)
		reply <- readResult{line: line}
	}
}

// ReadLine - blocks until a line arrives, the input closes or ctx is done.
func (that *Console) ReadLine(ctx context.Context) (string, error) {
	// buffered so an abandoned read never blocks the reader goroutine
	reply := make(chan readResult, 1)

	select {
	case that.requests <- reply:
	case <-that.stopped:
		return "", apperror.ErrInputClosed
	case <-ctx.Done():
		return "", fmt.Errorf("failed to read line: %w", ctx.Err())
	}

	select {
	case result := <-reply:
		return result.line, result.err
	case <-ctx.Done():
		that.logger.Debug("read abandoned, its line will be dropped", "error", ctx.Err())
		return "", fmt.Errorf("failed to read line: %w", ctx.Err())
	}
}

func (that *Console) WriteLine(line string) {
	if _, err := that.writer.WriteString(line + "\n"); err != nil {
		that.logger.Error("failed to write line", "error", err)
		return
	}

	if err := that.writer.Flush(); err != nil {
		that.logger.Error("failed to flush output", "error", err)
	}
}
