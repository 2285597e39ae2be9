package selection

import (
	"github.com/spf13/cobra"

	"github.com/InternatManhole/trains/cmd/internal/output"
	"github.com/InternatManhole/trains/cmd/selection/internal/selectparams"
	"github.com/InternatManhole/trains/internal/config"
	"github.com/InternatManhole/trains/internal/logging"
	"github.com/InternatManhole/trains/internal/store"
	"github.com/InternatManhole/trains/internal/train"
)

// SelectCmd lists the trains going to a destination.
var SelectCmd = &cobra.Command{
	Use:   "select [flags]... filename",
	Short: "Show the trains going to a destination",
	Long: `Show the trains whose destination matches --point_user, ignoring case.

Rows are numbered within the selection, in the order of the data file.`,
	Example: "  trains select trains.json -p Kazan",
	Args:    cobra.ExactArgs(1),
	PreRunE: func(cmd *cobra.Command, args []string) error {
		_params = selectparams.NewSelectParams(args[0], _pointUser)
		return _params.ParseAndValidate()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := logging.GetLogger()
		st := store.NewFileStore(config.FromContext(cmd.Context()).DataDir)

		records, err := st.Load(_params.FileName())
		if err != nil {
			return err
		}

		selected := train.Select(records, _params.Destination())
		logger.Verbose("Selected %d of %d trains going to %q", len(selected), len(records), _params.Destination())

		return output.Records(cmd, selected)
	},
}

var (
	_params    *selectparams.SelectParams
	_pointUser string
)

func init() {
	fl := SelectCmd.Flags()
	fl.StringVarP(&_pointUser, "point_user", "p", "", "Destination of the train")

	if err := SelectCmd.MarkFlagRequired("point_user"); err != nil {
		panic(err)
	}
}
