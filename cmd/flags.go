package cmd

import (
	flag "github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/rpaste-cli/rpaste/upload"
)

var (
	configFlag   string
	serverFlag   string
	authFlag     string
	urlFlag      string
	remoteFlag   string
	oneshotFlag  bool
	expireFlag   string
	filenameFlag string
	prettyFlag   bool

	serverVersionFlag bool
	listFlag          bool
	deleteFlag        bool

	debugFlag        bool
	verboseLevelFlag int
	noColorFlag      bool
)

func registerFlags(fs *flag.FlagSet) {
	fs.StringVarP(&configFlag, "config", "c", "", "Sets the configuration file. $RPASTE_CONFIG takes precedence.")
	fs.StringVarP(&serverFlag, "server", "s", "", "Sets the address of the rustypaste server.")
	fs.StringVarP(&authFlag, "auth", "a", "", "Sets the authentication or delete token.")
	fs.StringVarP(&urlFlag, "url", "u", "", "Sets the URL to shorten.")
	fs.StringVarP(&remoteFlag, "remote", "r", "", "Sets the remote URL for uploading.")
	fs.BoolVarP(&oneshotFlag, "oneshot", "o", false, "Generates one shot links.")
	fs.StringVarP(&expireFlag, "expire", "e", "", "Sets the expiration time for the link.")
	fs.StringVarP(&filenameFlag, "filename", "n", "", "Sets and overrides the filename.")
	fs.BoolVarP(&prettyFlag, "pretty", "p", false, "Prettifies the output.")

	fs.BoolVarP(&serverVersionFlag, "server-version", "V", false, "Retrieves the server version.")
	fs.BoolVarP(&listFlag, "list", "l", false, "Lists files on the server.")
	fs.BoolVarP(&deleteFlag, "delete", "d", false, "Deletes files from the server.")
}

// Flags shared by every command.
func registerGlobalFlags(pfs *flag.FlagSet) {
	pfs.BoolVar(&noColorFlag, "no-color", false, "Disables colored output. Also set by $NO_COLOR.")

	pfs.BoolVar(&debugFlag, "debug", false, "If set, outputs detailed information for debugging.")
	pfs.MarkHidden("debug")
	viper.BindPFlag("debug", pfs.Lookup("debug"))

	pfs.IntVar(&verboseLevelFlag, "verbose-level", 0, "Verbosity of debug output.")
	pfs.MarkHidden("verbose-level")
	viper.BindPFlag("verbose-level", pfs.Lookup("verbose-level"))
}

func newArgs(files []string) upload.Args {
	return upload.Args{
		ConfigPath:         configFlag,
		Server:             serverFlag,
		Auth:               authFlag,
		Oneshot:            oneshotFlag,
		Expire:             expireFlag,
		Filename:           filenameFlag,
		Prettify:           prettyFlag,
		PrintServerVersion: serverVersionFlag,
		ListFiles:          listFlag,
		Delete:             deleteFlag,
		URL:                urlFlag,
		Remote:             remoteFlag,
		Files:              files,
	}
}
