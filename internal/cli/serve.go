package cli

import (
	"github.com/spf13/cobra"

	"github.com/hselder/aquarelle/internal/server"
	"github.com/hselder/aquarelle/pkg/cache"
	"github.com/hselder/aquarelle/pkg/config"
)

// newServeCmd creates the serve command: an HTTP preview server with a
// file-backed render cache.
func newServeCmd(configPath *string) *cobra.Command {
	var (
		addr     string
		cacheDir string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve paintings over HTTP",
		Long: `Serve starts an HTTP preview server. Paintings are generated on
demand and cached on disk by their parameters:

  GET /painting?seed=42&width=1200&height=600&thickness=8&format=png`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(*configPath)
			if err != nil {
				return err
			}
			if addr == "" {
				addr = cfg.Serve.Addr
			}
			if cacheDir == "" {
				cacheDir = cfg.Serve.CacheDir
			}

			logger := loggerFromContext(cmd.Context())

			var store cache.Cache = cache.NullCache{}
			if cacheDir != "" {
				fc, err := cache.NewFileCache(cacheDir)
				if err != nil {
					return err
				}
				store = fc
				logger.Debugf("Render cache at %s", cacheDir)
			}

			return server.New(store, logger).ListenAndServe(cmd.Context(), addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from config, :8080)")
	cmd.Flags().StringVar(&cacheDir, "cache-dir", "", "render cache directory (empty disables caching)")

	return cmd
}
