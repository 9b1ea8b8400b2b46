package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/util"
	"github.com/spf13/cobra"

	errorparser "github.com/terascope/error-parser"
)

const (
	formatMessage = "message"
	formatText    = "text"
	formatJSON    = "json"
)

type parseParams struct {
	name       string
	statusCode int
	userError  bool
	info       map[string]string
	format     string
	logLevel   string
}

func newParseCommand(fs billy.Filesystem) *cobra.Command {
	var params parseParams

	cmd := &cobra.Command{
		Use:   "parse [file]",
		Short: "Parse an error document",
		Long: `Parse an error document read from file (or stdin when no file is given)
and print it.

JSON objects carrying "body" or "msg" are treated as search-engine errors,
objects carrying "response" as HTTP errors. Anything else is used as text.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runParse(cmd, fs, args, &params)
		},
	}

	cmd.Flags().StringVar(&params.name, "name", errorparser.DefaultName, "error name")
	cmd.Flags().IntVar(&params.statusCode, "status-code", 0, "HTTP status code of the error")
	cmd.Flags().BoolVar(&params.userError, "user-error", false, "mark the error as safe to expose")
	cmd.Flags().StringToStringVar(&params.info, "info", nil, "metadata to attach, e.g. --info index=logs")
	cmd.Flags().StringVarP(&params.format, "format", "f", formatText, "output format: message, text or json")
	cmd.Flags().StringVar(&params.logLevel, "log-level", "warn", "log level for diagnostics written to stderr")

	return cmd
}

func runParse(cmd *cobra.Command, fs billy.Filesystem, args []string, params *parseParams) error {
	logger, err := newLogger(cmd.ErrOrStderr(), params.logLevel)
	if err != nil {
		return errorparser.Wrap(err, "invalid log level", errorparser.WithUserError(true))
	}

	switch params.format {
	case formatMessage, formatText, formatJSON:
	default:
		return errorparser.Newf("unknown format %q", params.format)
	}

	data, err := readInput(fs, cmd.InOrStdin(), args)
	if err != nil {
		return errorparser.Wrap(err, "failed to read input", errorparser.WithUserError(true))
	}
	logger.WithField("bytes", len(data)).Debug("read error document")

	parsed := errorparser.New(decodeInput(data), parseOptions(cmd, params)...)
	logger.WithError(parsed).Debug("parsed error")

	out := cmd.OutOrStdout()
	switch params.format {
	case formatMessage:
		_, err = fmt.Fprintln(out, parsed.Message())
	case formatJSON:
		var encoded []byte
		encoded, err = json.MarshalIndent(parsed, "", "  ")
		if err == nil {
			_, err = fmt.Fprintln(out, string(encoded))
		}
	default:
		_, err = fmt.Fprintln(out, parsed.String())
	}
	if err != nil {
		return errorparser.Wrap(err, "failed to write output")
	}
	return nil
}

// parseOptions converts the flags the user actually set into options, so
// unset status codes and flags stay unset.
func parseOptions(cmd *cobra.Command, params *parseParams) []errorparser.Option {
	var opts []errorparser.Option
	flags := cmd.Flags()
	if flags.Changed("name") {
		opts = append(opts, errorparser.WithName(params.name))
	}
	if flags.Changed("status-code") {
		opts = append(opts, errorparser.WithStatusCode(params.statusCode))
	}
	if flags.Changed("user-error") {
		opts = append(opts, errorparser.WithUserError(params.userError))
	}
	if len(params.info) > 0 {
		info := make(map[string]any, len(params.info))
		for k, v := range params.info {
			info[k] = v
		}
		opts = append(opts, errorparser.WithInfo(info))
	}
	return opts
}

// readInput reads the named file from fs, or stdin when no file (or "-") is
// given. Relative paths resolve against the working directory.
func readInput(fs billy.Filesystem, stdin io.Reader, args []string) ([]byte, error) {
	if len(args) == 0 || args[0] == "-" {
		return io.ReadAll(stdin)
	}

	path, err := filepath.Abs(args[0])
	if err != nil {
		return nil, err
	}
	return util.ReadFile(fs, path)
}

// decodeInput maps an error document onto the shapes ParseMessage
// recognizes.
func decodeInput(data []byte) any {
	trimmed := bytes.TrimSpace(data)

	var doc any
	if err := json.Unmarshal(trimmed, &doc); err != nil {
		return string(trimmed)
	}

	switch v := doc.(type) {
	case map[string]any:
		if _, ok := v["body"]; ok {
			return json.RawMessage(trimmed)
		}
		if _, ok := v["msg"]; ok {
			return json.RawMessage(trimmed)
		}
		if _, ok := v["response"]; ok {
			return v
		}
	case string:
		return v
	}
	return string(trimmed)
}
