package dotrs

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/dotrs/dotrs/pkg/cipher"
	"github.com/dotrs/dotrs/pkg/errors"
	"github.com/dotrs/dotrs/pkg/ui"
)

// promptKeyFromTerminal reads the key without echo. It refuses to prompt
// when stdin is not a terminal.
func promptKeyFromTerminal(cmd *cobra.Command) (string, error) {
	if !ui.IsInteractive(os.Stdin) {
		return "", errors.New(errors.ErrInvalidInput, MsgErrNoKey)
	}

	fmt.Fprint(cmd.ErrOrStderr(), MsgKeyPrompt)
	raw, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(cmd.ErrOrStderr())
	if err != nil {
		return "", fmt.Errorf(MsgErrReadKey, err)
	}

	key := strings.TrimSpace(string(raw))
	if key == "" {
		return "", errors.New(errors.ErrInvalidInput, MsgErrNoKey)
	}
	return key, nil
}

func newEncryptCmd(a *app) *cobra.Command {
	var key string

	cmd := &cobra.Command{
		Use:     "encrypt <value>",
		Short:   MsgEncryptShort,
		Long:    MsgEncryptLong,
		Example: MsgEncryptExample,
		GroupID: "core",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if key == "" {
				key = a.cfg.DecryptionKey
			}
			if key == "" {
				prompted, err := a.promptKey(cmd)
				if err != nil {
					return err
				}
				key = prompted
			}

			blob, err := cipher.Encrypt(args[0], key)
			if err != nil {
				return err
			}

			p := a.printer(cmd)
			snippet := cipher.EncryptedValue(blob)
			if p.Styled() {
				p.Muted(MsgEncryptedSnippet)
				p.Line("%s", p.Secret(snippet))
				return nil
			}
			p.Line("%s", snippet)
			return nil
		},
	}

	cmd.Flags().StringVarP(&key, "key", "k", "", MsgFlagKey)

	return cmd
}

func newKeygenCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "keygen",
		Short:   MsgKeygenShort,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			key, err := cipher.GenerateKey()
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), key)
			return err
		},
	}
}
