package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var postActor string

var postCmd = &cobra.Command{
	Use:   "post <org-id> <entry-id>",
	Short: "Post a draft journal entry into the general ledger",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		orgID, err := parseIDArg("organization id", args[0])
		if err != nil {
			return err
		}
		entryID, err := parseIDArg("entry id", args[1])
		if err != nil {
			return err
		}

		ctx := cmd.Context()
		container, closeFn, err := buildServices(ctx)
		if err != nil {
			return err
		}
		defer closeFn()

		result, err := container.Posting.PostJournalEntry(ctx, orgID, entryID, postActor)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s posted at %s\n", result.EntryNo, result.PostedAt.Format("2006-01-02T15:04:05Z07:00"))
		return nil
	},
}

func init() {
	postCmd.Flags().StringVar(&postActor, "actor", "", "user id recorded as the poster")
	_ = postCmd.MarkFlagRequired("actor")
}
