package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func newImportCmd() *cobra.Command {
	var (
		file  string
		root  string
		db    string
		table string
	)

	cmd := &cobra.Command{
		Use:   "import",
		Short: "Store records from a JSON file into a sqlite table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, _, err := loadConfig()
			if err != nil {
				return err
			}
			ctx := context.Background()
			records, err := sourceFlags{file: file, root: root}.load(ctx, cfg.IdKeys)
			if err != nil {
				return err
			}
			src, err := openSqlite(ctx, db, table, cfg.IdKeys)
			if err != nil {
				return err
			}
			defer src.Close()
			if err = src.Store(ctx, records); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "imported %d records into %s\n", len(records), table)
			return nil
		},
	}

	cmd.Flags().StringVar(&file, "file", "", "JSON file with an array of records")
	cmd.Flags().StringVar(&root, "root", "", "gjson path of the record array inside the file")
	cmd.Flags().StringVar(&db, "db", "", "sqlite database path")
	cmd.Flags().StringVar(&table, "table", "records", "sqlite table name")
	_ = cmd.MarkFlagRequired("file")
	_ = cmd.MarkFlagRequired("db")
	return cmd
}
