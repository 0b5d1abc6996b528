package cli

import (
	"fmt"
	"sort"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/akiselev/datasheet/internal/config"
	"github.com/akiselev/datasheet/internal/filecache"
)

// digestDisplayLen is how many digest characters the list shows. Enough to
// tell entries apart without flooding the table.
const digestDisplayLen = 12

// cacheRow is one upload cache entry flattened for display and JSON output.
type cacheRow struct {
	Digest    string `json:"digest"`
	Name      string `json:"name"`
	URI       string `json:"uri"`
	SizeBytes uint64 `json:"size_bytes"`
	ExpiresAt uint64 `json:"expires_at"`
	ExpiresIn string `json:"expires_in"`
}

// NewCacheListCmd creates the cache list command.
func NewCacheListCmd() *cobra.Command {
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List cached uploads",
		Long: `Lists every tracked upload with its content digest, remote name, size,
and remaining lifetime. Expired entries are shown until the next sweep.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCacheList(cmd, jsonOut)
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "output entries as JSON")

	return cmd
}

func runCacheList(cmd *cobra.Command, jsonOut bool) error {
	store := openCacheStore(cmd)

	now := time.Now()
	rows := make([]cacheRow, 0, store.Len())
	for digest, rec := range store.Records() {
		rows = append(rows, cacheRow{
			Digest:    digest,
			Name:      rec.Name,
			URI:       rec.URI,
			SizeBytes: rec.FileSize,
			ExpiresAt: rec.ExpiresAt,
			ExpiresIn: formatTTL(rec.TimeToLive(now)),
		})
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Digest < rows[j].Digest })

	if jsonOut {
		return printJSON(cmd, rows)
	}

	if len(rows) == 0 {
		cmd.Println("Upload cache is empty.")
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, tabPadding, ' ', 0)
	fmt.Fprintln(w, "Digest\tRemote Name\tSize\tExpires In")
	fmt.Fprintln(w, "------\t-----------\t----\t----------")
	var totalBytes uint64
	for _, row := range rows {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
			shortDigest(row.Digest), row.Name, formatBytes(row.SizeBytes), row.ExpiresIn)
		totalBytes += row.SizeBytes
	}
	if err := w.Flush(); err != nil {
		return err
	}

	p := message.NewPrinter(language.English)
	cmd.Println()
	cmd.Println(p.Sprintf("%d cached upload(s), %d bytes total", len(rows), totalBytes))
	return nil
}

// openCacheStore opens the cache document at the resolved directory.
func openCacheStore(cmd *cobra.Command) *filecache.Store {
	return filecache.OpenStore(cmd.Context(), filecache.ResolveDir(config.New().Cache.Dir))
}

// shortDigest truncates a content digest for table display.
func shortDigest(digest string) string {
	if len(digest) <= digestDisplayLen {
		return digest
	}
	return digest[:digestDisplayLen]
}

// formatBytes renders a byte count in a compact human unit.
func formatBytes(n uint64) string {
	switch {
	case n >= 1<<20:
		return fmt.Sprintf("%.1f MB", float64(n)/(1<<20))
	case n >= 1<<10:
		return fmt.Sprintf("%.1f KB", float64(n)/(1<<10))
	default:
		return fmt.Sprintf("%d B", n)
	}
}

// formatTTL renders a remaining lifetime as hours and minutes.
func formatTTL(d time.Duration) string {
	if d <= 0 {
		return "expired"
	}
	hours := int(d.Hours())
	minutes := int(d.Minutes()) % 60
	return fmt.Sprintf("%dh%02dm", hours, minutes)
}
