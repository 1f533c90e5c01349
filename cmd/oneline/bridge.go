package main

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/jundev/oneline/internal/service"
)

type bridgeError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type bridgeResponse struct {
	OK    bool         `json:"ok"`
	Error *bridgeError `json:"error,omitempty"`
}

func bridgeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "bridge",
		Short: "Serve the widget method channel on stdin/stdout",
		Long: `Read one JSON call per line from stdin, for example
  {"method":"updateWidgetData","args":{"hasWrittenToday":true,"currentStreak":3}}
and answer each with {"ok":true} or {"ok":false,"error":{...}}.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := setup()
			if err != nil {
				return err
			}
			defer e.Close()
			return serveBridge(cmd.Context(), e.bridge, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
}

func serveBridge(ctx context.Context, b *service.WidgetBridge, in io.Reader, out io.Writer) error {
	enc := json.NewEncoder(out)
	sc := bufio.NewScanner(in)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for sc.Scan() {
		line := bytes.TrimSpace(sc.Bytes())
		if len(line) == 0 {
			continue
		}
		resp := bridgeResponse{OK: true}
		if err := handleLine(ctx, b, line); err != nil {
			resp = bridgeResponse{Error: &bridgeError{Code: service.ErrorCode(err), Message: err.Error()}}
		}
		if err := enc.Encode(resp); err != nil {
			return fmt.Errorf("write response: %w", err)
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("read calls: %w", err)
	}
	return nil
}

func handleLine(ctx context.Context, b *service.WidgetBridge, line []byte) error {
	dec := json.NewDecoder(bytes.NewReader(line))
	dec.UseNumber()
	var call service.MethodCall
	if err := dec.Decode(&call); err != nil {
		return fmt.Errorf("%w: %v", service.ErrInvalidArgs, err)
	}
	return b.Handle(ctx, call)
}
