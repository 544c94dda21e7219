/*
   VMUTool - Dreamcast Visual Memory image inspector
   Copyright (c) 2026, the VMUTool authors

   This file is part of VMUTool.

   VMUTool is free software: you can redistribute it and/or modify
   it under the terms of the GNU General Public License as published by
   the Free Software Foundation, either version 3 of the License, or
   (at your option) any later version.

   VMUTool is distributed in the hope that it will be useful,
   but WITHOUT ANY WARRANTY; without even the implied warranty of
   MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
   GNU General Public License for more details.

   You should have received a copy of the GNU General Public License
   along with VMUTool. If not, see <http://www.gnu.org/licenses/>.
*/

package run

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/xelalexv/vmutool/pkg/repo"
	"github.com/xelalexv/vmutool/pkg/vms"
)

//
const runnerHelpEpilogue = `- Images can be given as local file paths, as http(s):// URLs, or as
  repo://{path} references into the repository of a running server.
  Compressed images (.gz, .zip, .7z) are supported.

- Settings can also be made via environment variables, shown in brackets.
`

//
type setting struct {
	name     string
	env      string
	ref      interface{}
	required bool
}

/*
	NewRunner creates a runner. Use, short, long, example & epilogue make up
	the help text. exec is called when the command runs, after settings have
	been parsed.
*/
func NewRunner(use, short, long, example, epilogue string,
	exec func() error) *Runner {

	r := &Runner{
		viper: viper.New(),
		exec:  exec,
	}

	if epilogue != "" {
		long = fmt.Sprintf("%s\n\nNotes:\n\n%s", long, epilogue)
	}

	r.cmd = &cobra.Command{
		Use:           use,
		Short:         short,
		Long:          long,
		Example:       example,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			r.Args = args
			if err := r.ParseSettings(); err != nil {
				return err
			}
			return r.exec()
		},
	}

	return r
}

// Runner is the base for all commands.
type Runner struct {
	Address  string
	LogLevel string
	Args     []string
	//
	cmd      *cobra.Command
	viper    *viper.Viper
	settings []*setting
	exec     func() error
}

//
func (r *Runner) Command() *cobra.Command {
	return r.cmd
}

//
func (r *Runner) AddBaseSettings() {
	r.AddSetting(&r.Address, "address", "a", "VMUTOOL_ADDRESS",
		"http://localhost:8888", "address of vmutool server", false)
	r.AddSetting(&r.LogLevel, "log-level", "", "LOG_LEVEL", "info",
		"log level (trace, debug, info, warn, error)", false)
}

/*
	AddSetting adds a setting backed by the variable ref points to. Supported
	are *string, *int, and *bool. The value is taken from the command line
	flag name, or short if not empty, from environment variable env if
	given, or falls back to def.
*/
func (r *Runner) AddSetting(ref interface{}, name, short, env string,
	def interface{}, usage string, required bool) {

	var flags *pflag.FlagSet = r.cmd.Flags()

	if env != "" {
		usage = fmt.Sprintf("%s [%s]", usage, env)
	}

	switch v := ref.(type) {
	case *string:
		d, _ := def.(string)
		flags.StringVarP(v, name, short, d, usage)
	case *int:
		d, _ := def.(int)
		flags.IntVarP(v, name, short, d, usage)
	case *bool:
		d, _ := def.(bool)
		flags.BoolVarP(v, name, short, d, usage)
	default:
		panic(fmt.Sprintf("unsupported setting type for %s: %T", name, ref))
	}

	if err := r.viper.BindPFlag(name, flags.Lookup(name)); err != nil {
		panic(fmt.Sprintf("cannot bind flag %s: %v", name, err))
	}
	if env != "" {
		if err := r.viper.BindEnv(name, env); err != nil {
			panic(fmt.Sprintf("cannot bind env %s: %v", env, err))
		}
	}
	if def != nil {
		r.viper.SetDefault(name, def)
	}

	r.settings = append(r.settings,
		&setting{name: name, env: env, ref: ref, required: required})
}

// ParseSettings resolves all settings from flags, environment & defaults,
// and configures logging.
func (r *Runner) ParseSettings() error {

	for _, s := range r.settings {

		if s.required && !r.viper.IsSet(s.name) {
			return fmt.Errorf("required setting missing: --%s", s.name)
		}

		switch v := s.ref.(type) {
		case *string:
			*v = r.viper.GetString(s.name)
		case *int:
			*v = r.viper.GetInt(s.name)
		case *bool:
			*v = r.viper.GetBool(s.name)
		}
	}

	if r.LogLevel != "" {
		level, err := log.ParseLevel(r.LogLevel)
		if err != nil {
			return fmt.Errorf("invalid log level: %s", r.LogLevel)
		}
		log.SetLevel(level)
	}

	return nil
}

// IsSet tells whether setting name was given explicitly, via flag or
// environment.
func (r *Runner) IsSet(name string) bool {
	if f := r.cmd.Flags().Lookup(name); f != nil && f.Changed {
		return true
	}
	for _, s := range r.settings {
		if s.name == name && s.env != "" {
			_, ok := os.LookupEnv(s.env)
			return ok
		}
	}
	return false
}

// Arg returns positional argument ix, or an empty string.
func (r *Runner) Arg(ix int) string {
	if 0 <= ix && ix < len(r.Args) {
		return r.Args[ix]
	}
	return ""
}

// IsRemote tells whether ref needs to be resolved by the server.
func IsRemote(ref string) bool {
	return strings.HasPrefix(ref, repo.RefRepo)
}

// loadCard loads a local or downloadable image.
func (r *Runner) loadCard(ref string) (*vms.Card, error) {
	if ref == "" {
		return nil, fmt.Errorf("no image given")
	}
	return repo.Load(context.Background(), ref, "")
}

// imageCall makes an API call concerning image ref on the server.
func (r *Runner) imageCall(endpoint, ref string, params url.Values) (
	io.ReadCloser, error) {
	if params == nil {
		params = url.Values{}
	}
	params.Set("ref", ref)
	return r.apiCall("GET",
		fmt.Sprintf("/image/%s?%s", endpoint, params.Encode()), false, nil)
}

//
func (r *Runner) apiCall(method, path string, json bool,
	body io.Reader) (io.ReadCloser, error) {

	req, err := http.NewRequest(method,
		strings.TrimSuffix(r.Address, "/")+path, body)
	if err != nil {
		return nil, err
	}

	if json {
		req.Header.Set("Accept", "application/json")
	}

	client := &http.Client{Timeout: 30 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode != http.StatusOK {
		defer resp.Body.Close()
		msg, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%s", strings.TrimSpace(string(msg)))
	}

	return resp.Body, nil
}

//
func copyOut(resp io.ReadCloser) error {
	defer resp.Close()
	_, err := io.Copy(os.Stdout, resp)
	return err
}

// showImage shows information about the image given as first argument.
// Repository references are passed on to the server's endpoint, all other
// images are loaded and handed to local.
func (r *Runner) showImage(endpoint string, params url.Values,
	local func(*vms.Card) error) error {

	ref := r.Arg(0)

	if IsRemote(ref) {
		resp, err := r.imageCall(endpoint, ref, params)
		if err != nil {
			return err
		}
		return copyOut(resp)
	}

	card, err := r.loadCard(ref)
	if err != nil {
		return err
	}
	return local(card)
}
