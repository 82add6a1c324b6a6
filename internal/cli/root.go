package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/spf13/cobra"
	"go.opentelemetry.io/contrib/instrumentation/github.com/aws/aws-sdk-go-v2/otelaws"
	"go.opentelemetry.io/otel"

	"github.com/voxforge/studio/internal/llm"
	"github.com/voxforge/studio/internal/observability"
	"github.com/voxforge/studio/internal/persona"
	"github.com/voxforge/studio/internal/store"
	"github.com/voxforge/studio/internal/studio"
)

var Version = "dev"

var rootCmd = &cobra.Command{
	Use:   "studio",
	Short: "Generate persona-driven short-form video scripts",
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("studio %s\n", Version)
	},
}

var (
	flagProvider     string
	flagModel        string
	flagTable        string
	flagVerbose      bool
	flagGeminiAPIKey string
)

func init() {
	rootCmd.AddCommand(versionCmd)
	rootCmd.PersistentFlags().StringVar(&flagProvider, "provider", "gemini", "Model provider: gemini, claude, nova")
	rootCmd.PersistentFlags().StringVarP(&flagModel, "model", "m", "", "Model variant (gemini: flash, pro; claude: haiku, sonnet; nova: nova-lite, nova-pro)")
	rootCmd.PersistentFlags().StringVar(&flagTable, "table", os.Getenv("STUDIO_TABLE"), "DynamoDB table for script history (or STUDIO_TABLE env var)")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable detailed logging")
	rootCmd.PersistentFlags().StringVar(&flagGeminiAPIKey, "gemini-api-key", "", "Gemini API key (overrides GEMINI_API_KEY env var)")
}

func ExecuteContext(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

// newStudio wires the gateway, persona catalog, logger, and tracer into an
// orchestrator per the persistent flags.
func newStudio(ctx context.Context) (*studio.Studio, error) {
	logger := observability.InitLogger(flagVerbose)

	gw, err := newGateway(ctx)
	if err != nil {
		return nil, err
	}

	opts := []studio.Option{
		studio.WithLogger(logger),
		studio.WithTracer(otel.Tracer("studio")),
	}
	// Only the Gemini gateway renders images.
	if g, ok := gw.(*llm.GeminiGateway); ok {
		opts = append(opts, studio.WithImageGateway(g))
	}

	reg := persona.NewRegistry(persona.DefaultCatalog())
	return studio.New(gw, reg, opts...), nil
}

func newGateway(ctx context.Context) (llm.Gateway, error) {
	switch flagProvider {
	case "gemini":
		return llm.NewGeminiGateway(flagModel, flagGeminiAPIKey), nil
	case "claude":
		return llm.NewClaudeGateway(flagModel)
	case "nova":
		return llm.NewNovaGateway(ctx, flagModel)
	default:
		return nil, fmt.Errorf("invalid provider %q: must be gemini, claude, or nova", flagProvider)
	}
}

// newStore opens the DynamoDB history store. It errors when no table is
// configured so commands that need history fail with a clear message.
func newStore(ctx context.Context) (store.Store, error) {
	if flagTable == "" {
		return nil, fmt.Errorf("no history table configured: set --table or STUDIO_TABLE")
	}
	cfg, err := config.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("load AWS config: %w", err)
	}
	otelaws.AppendMiddlewares(&cfg.APIOptions)
	return store.NewDynamoStore(dynamodb.NewFromConfig(cfg), flagTable), nil
}

// loadScript fetches a saved script by id for the inspection commands.
func loadScript(ctx context.Context, id string) (*store.SavedScript, store.Store, error) {
	st, err := newStore(ctx)
	if err != nil {
		return nil, nil, err
	}
	saved, err := st.Get(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	if saved == nil {
		return nil, nil, fmt.Errorf("no saved script with id %s", id)
	}
	return saved, st, nil
}
