package add

import (
	"github.com/spf13/cobra"

	"github.com/InternatManhole/trains/cmd/add/internal/addparams"
	"github.com/InternatManhole/trains/cmd/internal/output"
	"github.com/InternatManhole/trains/internal/config"
	"github.com/InternatManhole/trains/internal/locale"
	"github.com/InternatManhole/trains/internal/logging"
	"github.com/InternatManhole/trains/internal/store"
	"github.com/InternatManhole/trains/internal/train"
)

// AddCmd inserts a train into a data file, keeping the file ordered by departure time.
var AddCmd = &cobra.Command{
	Use:   "add [flags]... filename",
	Short: "Add a train to the list",
	Long: `Add a train to the list stored in the data file.

All values are stored lowercased. The list stays ordered by departure time;
adding a train that is already present leaves the file untouched.`,
	Example: "  trains add trains.json -dep Moscow -n 001A -t 08:00 -des Kazan",
	Args:    cobra.ExactArgs(1),
	PreRunE: func(cmd *cobra.Command, args []string) error {
		_params = addparams.NewAddParams(args[0], _departurePoint, _numberTrain, _timeDeparture, _destination)
		return _params.ParseAndValidate()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runAdd(cmd, _params)
	},
}

var (
	_params *addparams.AddParams

	_departurePoint string
	_numberTrain    string
	_timeDeparture  string
	_destination    string
)

func init() {
	fl := AddCmd.Flags()

	// -dep and -des are rewritten to their long forms before parsing
	fl.StringVar(&_departurePoint, "departure_point", "", "The departure point of the train (-dep)")
	fl.StringVarP(&_numberTrain, "number_train", "n", "", "The number of the train")
	fl.StringVarP(&_timeDeparture, "time_departure", "t", "", "The departure time of the train")
	fl.StringVar(&_destination, "destination", "", "The destination of the train (-des)")

	for _, name := range []string{"departure_point", "number_train", "time_departure", "destination"} {
		if err := AddCmd.MarkFlagRequired(name); err != nil {
			panic(err)
		}
	}
}

func runAdd(cmd *cobra.Command, params *addparams.AddParams) error {
	logger := logging.GetLogger()
	st := store.NewFileStore(config.FromContext(cmd.Context()).DataDir)

	records, err := st.Load(params.FileName())
	if err != nil {
		return err
	}
	logger.Verbose("Loaded %d trains from %s", len(records), st.Path(params.FileName()))

	record := params.Record()
	records, changed := train.Insert(records, record)
	if !changed {
		logger.EvenMoreVerbose("Train %+v already present, not saving", record)
		p, err := output.Printer(cmd)
		if err != nil {
			return err
		}
		output.Notice(cmd, p.Sprintf(locale.AlreadyAdded))
		return nil
	}

	if err := st.Save(params.FileName(), records); err != nil {
		return err
	}
	logger.Verbose("Saved %d trains to %s", len(records), st.Path(params.FileName()))
	return nil
}
