package display

import (
	"github.com/spf13/cobra"

	"github.com/InternatManhole/trains/cmd/internal/output"
	"github.com/InternatManhole/trains/internal/config"
	"github.com/InternatManhole/trains/internal/logging"
	"github.com/InternatManhole/trains/internal/store"
)

// DisplayCmd prints every train of a data file.
var DisplayCmd = &cobra.Command{
	Use:     "display filename",
	Short:   "Show all trains",
	Example: "  trains display trains.json",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st := store.NewFileStore(config.FromContext(cmd.Context()).DataDir)

		records, err := st.Load(args[0])
		if err != nil {
			return err
		}
		logging.GetLogger().Verbose("Loaded %d trains from %s", len(records), st.Path(args[0]))

		return output.Records(cmd, records)
	},
}
