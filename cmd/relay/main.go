// Command relay is a small CLI for exercising the ModelRelay API from a
// terminal: one-shot chat (optionally streamed), catalog lookups, and a
// connectivity check. Credentials and endpoint come from flags or the
// MODELRELAY_API_KEY / MODELRELAY_BASE_URL environment (a local .env file
// is loaded automatically).
package main

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/briandowns/spinner"
	_ "github.com/joho/godotenv/autoload"
	"github.com/spf13/cobra"

	"github.com/modelrelay/relay/core/api"
	"github.com/modelrelay/relay/core/client"
	"github.com/modelrelay/relay/internal/utils"
)

var (
	// Flags
	apiKey    string
	baseURL   string
	model     string
	stream    bool
	maxTokens int
	debug     bool

	rootCmd = &cobra.Command{
		Use:   "relay",
		Short: "ModelRelay API client",
		Long:  "relay - command line client for the ModelRelay multi-provider completion API",
	}

	chatCmd = &cobra.Command{
		Use:   "chat [message]",
		Short: "Send a one-shot chat message",
		Args:  cobra.MinimumNArgs(1),
		RunE:  runChat,
	}

	modelsCmd = &cobra.Command{
		Use:   "models [provider]",
		Short: "List available models, optionally for one provider",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runModels,
	}

	pingCmd = &cobra.Command{
		Use:   "ping",
		Short: "Check that the configured endpoint is reachable",
		RunE:  runPing,
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&apiKey, "api-key", "", "API key (defaults to MODELRELAY_API_KEY)")
	rootCmd.PersistentFlags().StringVar(&baseURL, "base-url", "", "Base URL (defaults to MODELRELAY_BASE_URL)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable per-attempt diagnostic logging")

	chatCmd.Flags().StringVarP(&model, "model", "m", "gpt-4o-mini", "Model to use")
	chatCmd.Flags().BoolVarP(&stream, "stream", "s", false, "Stream the reply token by token")
	chatCmd.Flags().IntVar(&maxTokens, "max-tokens", 0, "Cap the reply length (0 = server default)")

	rootCmd.AddCommand(chatCmd, modelsCmd, pingCmd)
}

func newClient() (*client.Client, error) {
	opts := []client.Option{client.WithDebug(debug)}
	if baseURL != "" {
		opts = append(opts, client.WithBaseURL(baseURL))
	}
	return client.New(apiKey, opts...)
}

func runChat(cmd *cobra.Command, args []string) error {
	c, err := newClient()
	if err != nil {
		return err
	}

	messages := []api.Message{{Role: api.RoleUser, Content: strings.Join(args, " ")}}
	var opts api.ChatOptions
	if maxTokens > 0 {
		opts.MaxTokens = utils.Ptr(maxTokens)
	}

	if stream {
		chunkStream, err := c.ChatStream(cmd.Context(), model, messages, &opts)
		if err != nil {
			return err
		}
		for chunk, err := range chunkStream.Iter() {
			if err != nil {
				return fmt.Errorf("stream interrupted: %w", err)
			}
			for _, choice := range chunk.Choices {
				fmt.Print(choice.Delta.Content)
			}
		}
		fmt.Println()
		return nil
	}

	wait := spinner.New(spinner.CharSets[14], 100*time.Millisecond)
	wait.Suffix = " waiting for " + model
	wait.Start()
	envelope, err := c.Chat(cmd.Context(), model, messages, &opts)
	wait.Stop()
	if err != nil {
		return err
	}
	if envelope.Failed() {
		return fmt.Errorf("%s (%s)", envelope.Error.Message, envelope.Error.Code)
	}
	fmt.Println(envelope.Content())
	return nil
}

func runModels(cmd *cobra.Command, args []string) error {
	c, err := newClient()
	if err != nil {
		return err
	}

	var envelope *api.ResponseEnvelope
	if len(args) == 1 {
		envelope, err = c.ModelsByProvider(cmd.Context(), args[0])
		if err != nil {
			return err
		}
	} else {
		envelope = c.Models(cmd.Context(), url.Values{})
	}

	if envelope.Failed() {
		return fmt.Errorf("%s (%s)", envelope.Error.Message, envelope.Error.Code)
	}
	fmt.Println(string(envelope.Data))
	return nil
}

func runPing(cmd *cobra.Command, args []string) error {
	c, err := newClient()
	if err != nil {
		return err
	}
	if err := c.Ping(cmd.Context()); err != nil {
		return err
	}
	fmt.Println("ok")
	return nil
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
