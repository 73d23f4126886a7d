package main

import (
	"fmt"

	"connectrpc.com/connect"
	"github.com/spf13/cobra"

	readingv1 "github.com/voicetyped/recite/gen/recite/reading/v1"
	"github.com/voicetyped/recite/gen/recite/reading/v1/readingv1connect"
	"github.com/voicetyped/recite/internal/connectutil"
)

func watchCmd() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "watch <session-id>",
		Short: "Stream a live session's events from a running server",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client := readingv1connect.NewReadingServiceClient(connectutil.H2CClient(), addr, connectutil.DefaultClientOptions()...)
			stream, err := client.WatchEvents(cmd.Context(), connect.NewRequest(&readingv1.WatchEventsRequest{SessionId: args[0]}))
			if err != nil {
				return err
			}
			defer stream.Close()

			out := cmd.OutOrStdout()
			for stream.Receive() {
				ev := stream.Msg()
				ts := ev.GetTimestamp().AsTime().Local()
				fmt.Fprintf(out, "%s  %-18s %s\n", ts.Format("15:04:05.000"), ev.GetType(), ev.GetData())
			}
			return stream.Err()
		},
	}

	cmd.Flags().StringVar(&addr, "addr", envOr("RECITE_ADDR", "http://localhost:8080"), "recite service base URL")
	return cmd
}
