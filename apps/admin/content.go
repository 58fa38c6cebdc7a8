package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/trezcool/genmo/core/content"
)

// seed writes the default content unless the backend already holds clients or skills.
func (cli *commandLine) seed(ctx context.Context) error {
	persisted, err := cli.store.Persisted(ctx)
	if err != nil {
		return err
	}
	if st := cli.store.Stats(); persisted && (st.Clients > 0 || st.Skills > 0) {
		fmt.Fprintln(cli.out, "content already present, nothing to seed")
		return nil
	}
	if err := cli.store.Reset(ctx); err != nil {
		return err
	}
	fmt.Fprintln(cli.out, "default content written")
	return nil
}

func (cli *commandLine) stats() error {
	return yaml.NewEncoder(cli.out).Encode(cli.store.Stats())
}

func (cli *commandLine) activities(limit int) error {
	w := tabwriter.NewWriter(cli.out, 0, 4, 2, ' ', 0)
	for _, a := range cli.store.RecentActivities(limit) {
		fmt.Fprintf(w, "%s\t%s\t%s\n", a.CreatedAt.Format("2006-01-02 15:04:05"), a.Title, a.Description)
	}
	return w.Flush()
}

func (cli *commandLine) reset(ctx context.Context) error {
	if err := cli.store.Reset(ctx); err != nil {
		return err
	}
	fmt.Fprintln(cli.out, "content reset")
	return nil
}

func (cli *commandLine) export(path string) error {
	var w io.Writer = cli.out
	if path != "" {
		f, err := os.Create(path)
		if err != nil {
			return errors.Wrap(err, "creating export file")
		}
		defer f.Close()
		w = f
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(cli.store.Snapshot()); err != nil {
		return errors.Wrap(err, "encoding content")
	}
	return enc.Close()
}

func (cli *commandLine) importFile(ctx context.Context, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return errors.Wrap(err, "opening import file")
	}
	defer f.Close()

	var snap content.Snapshot
	if err := yaml.NewDecoder(f).Decode(&snap); err != nil {
		return errors.Wrap(err, "decoding content")
	}
	if err := cli.store.Replace(ctx, snap); err != nil {
		return err
	}
	st := cli.store.Stats()
	fmt.Fprintf(cli.out, "imported %d content items\n", st.TotalContentItems)
	return nil
}
