package main

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"gridview"
	"gridview/common"
	"gridview/utils"
)

type viewFlags struct {
	source    sourceFlags
	columns   string
	search    string
	filter    string
	state     string
	sortKey   string
	desc      bool
	page      int
	pageSize  int
	selectIds string
	format    string
	scope     string
	showState bool
}

func newViewCmd() *cobra.Command {
	var f viewFlags

	cmd := &cobra.Command{
		Use:   "view",
		Short: "Show one page of the derived view",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runView(cmd, f)
		},
	}

	cmd.Flags().StringVar(&f.source.file, "file", "", "JSON file with an array of records")
	cmd.Flags().StringVar(&f.source.root, "root", "", "gjson path of the record array inside the file")
	cmd.Flags().StringVar(&f.source.db, "db", "", "sqlite database path")
	cmd.Flags().StringVar(&f.source.table, "table", "records", "sqlite table name")
	cmd.Flags().StringVar(&f.columns, "columns", "", "comma separated columns, key or key:Label (default: all keys)")
	cmd.Flags().StringVar(&f.search, "search", "", "fuzzy search term")
	cmd.Flags().StringVar(&f.filter, "filter", "", `filter state as JSON, e.g. {"status":"active","tags":["a","b"]}`)
	cmd.Flags().StringVar(&f.state, "state", "", "view state JSON printed by --show-state")
	cmd.Flags().StringVar(&f.sortKey, "sort", "", "sort column")
	cmd.Flags().BoolVar(&f.desc, "desc", false, "sort descending")
	cmd.Flags().IntVar(&f.page, "page", 1, "page number")
	cmd.Flags().IntVar(&f.pageSize, "page-size", 0, "rows per page (default from config)")
	cmd.Flags().StringVar(&f.selectIds, "select", "", "comma separated record ids to select")
	cmd.Flags().StringVar(&f.format, "format", "table", "output format: table, json or csv")
	cmd.Flags().StringVar(&f.scope, "scope", "page", "rows for json/csv output: page, live or selected")
	cmd.Flags().BoolVar(&f.showState, "show-state", false, "print the view state JSON after the view")
	return cmd
}

func runView(cmd *cobra.Command, f viewFlags) error {
	cfg, logger, err := loadConfig()
	if err != nil {
		return err
	}
	ctx := context.Background()
	records, err := f.source.load(ctx, cfg.IdKeys)
	if err != nil {
		return err
	}

	opts := cfg.TableOptions()
	opts.Logger = logger
	opts.Columns = parseColumns(f.columns, records)

	filters := map[string]interface{}{}
	if f.filter != "" {
		if filters, err = common.ParseFilterState(f.filter); err != nil {
			return err
		}
	}
	var saved *common.ViewState
	if f.state != "" {
		state, err := common.ParseViewState(f.state, common.NewViewState(nil, opts.PageSize))
		if err != nil {
			return err
		}
		saved = &state
	}
	opts.Filters = filterSpecs(specValues(filters, saved), records)

	table := gridview.NewTable(opts)
	table.SetData(records)

	if saved != nil {
		if err = table.SetState(*saved); err != nil {
			return err
		}
	}
	if err = applyFlags(cmd, table, f, filters); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	switch f.format {
	case "table":
		renderTable(out, table)
	case "json":
		scope, err := gridview.ParseExportScope(f.scope)
		if err != nil {
			return err
		}
		data, err := table.ExportJSON(scope, nil)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, data)
	case "csv":
		scope, err := gridview.ParseExportScope(f.scope)
		if err != nil {
			return err
		}
		if err = table.ExportCSV(out, scope, nil); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unknown format %q", f.format)
	}

	if f.showState {
		state, err := table.State().Marshal()
		if err != nil {
			return err
		}
		fmt.Fprintln(out, state)
	}
	return nil
}

// applyFlags 只应用命令行上显式给出的参数，其余保持--state中的值
func applyFlags(cmd *cobra.Command, table *gridview.Table, f viewFlags, filters map[string]interface{}) error {
	flags := cmd.Flags()
	if flags.Changed("search") {
		if err := table.SetSearch(f.search); err != nil {
			return err
		}
	}
	keys := make([]string, 0, len(filters))
	for key := range filters {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		if err := table.SetFilter(key, filters[key]); err != nil {
			return err
		}
	}
	if f.sortKey != "" {
		want := common.SortState{Key: f.sortKey, Direction: common.Asc}
		if f.desc {
			want.Direction = common.Desc
		}
		// 最多点击两次就能到达目标方向
		for i := 0; i < 2 && table.State().Sort != want; i++ {
			if err := table.ToggleSort(f.sortKey); err != nil {
				return err
			}
		}
	}
	if flags.Changed("page-size") {
		if err := table.SetPageSize(f.pageSize); err != nil {
			return err
		}
	}
	if flags.Changed("page") {
		table.SetPage(f.page)
	}
	if f.selectIds != "" {
		want := map[string]bool{}
		for _, id := range strings.Split(f.selectIds, ",") {
			want[strings.TrimSpace(id)] = true
		}
		for _, rec := range table.View().Live {
			key := string(common.Identity(rec, table.Options().IdKeys))
			if want[strings.TrimPrefix(key, "id:")] {
				if err := table.Toggle(rec, true); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

// parseColumns spec为空时使用所有记录中出现过的字段
func parseColumns(spec string, records []common.Record) []common.Column {
	if spec == "" {
		seen := map[string]bool{}
		keys := []string{}
		for _, rec := range records {
			for key := range rec {
				if !seen[key] {
					seen[key] = true
					keys = append(keys, key)
				}
			}
		}
		sort.Strings(keys)
		columns := make([]common.Column, len(keys))
		for i, key := range keys {
			columns[i] = common.Column{Key: key}
		}
		return columns
	}
	columns := []common.Column{}
	for _, part := range strings.Split(spec, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		key, label, _ := strings.Cut(part, ":")
		columns = append(columns, common.Column{Key: key, Label: label})
	}
	return columns
}

// specValues 合并--filter和--state中出现的筛选字段，--filter优先
func specValues(filters map[string]interface{}, saved *common.ViewState) map[string]interface{} {
	ret := map[string]interface{}{}
	if saved != nil {
		for key, value := range saved.Filters {
			ret[key] = value
		}
	}
	for key, value := range filters {
		ret[key] = value
	}
	return ret
}

// filterSpecs 为每个筛选字段生成选项，选项是该字段在数据中出现过的值
func filterSpecs(filters map[string]interface{}, records []common.Record) []common.FilterSpec {
	specs := []common.FilterSpec{}
	for key, value := range filters {
		_, multi := utils.List(value)
		spec := common.FilterSpec{Key: key, Multi: multi, Placeholder: key}
		seen := map[string]bool{}
		for _, rec := range records {
			v, ok := rec.Get(key)
			if !ok {
				continue
			}
			label := utils.String(v)
			if seen[label] {
				continue
			}
			seen[label] = true
			spec.Options = append(spec.Options, common.FilterOption{Value: v, Label: label})
		}
		specs = append(specs, spec)
	}
	sort.Slice(specs, func(i, j int) bool { return specs[i].Key < specs[j].Key })
	return specs
}
