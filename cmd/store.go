package cmd

import (
	"fmt"
	"os"
	"path"
	"time"

	"github.com/spf13/cobra"

	"github.com/Bibendus83/period/pkg/metrics"
	"github.com/Bibendus83/period/pkg/store"
)

var storeDir string
var storeName string
var storeFile string

func init() {
	dataDir, _ := os.Getwd()
	storeCmd.PersistentFlags().StringVar(&storeDir, "data-dir", path.Join(dataDir, "sequences.db"), "Sequence database location")

	storeSaveCmd.Flags().StringVarP(&storeFile, "file", "f", "", "Intervals file (YAML or JSON)")
	_ = storeSaveCmd.MarkFlagRequired("file")
	storeSaveCmd.Flags().StringVarP(&storeName, "name", "n", "", "Sequence name (generated when empty)")
	storeShowCmd.Flags().StringVarP(&storeName, "name", "n", "", "Sequence name")
	_ = storeShowCmd.MarkFlagRequired("name")
	storeDeleteCmd.Flags().StringVarP(&storeName, "name", "n", "", "Sequence name")
	_ = storeDeleteCmd.MarkFlagRequired("name")

	storeCmd.AddCommand(storeSaveCmd, storeShowCmd, storeListCmd, storeDeleteCmd)
	rootCmd.AddCommand(storeCmd)
}

var storeCmd = &cobra.Command{
	Use:   "store",
	Short: "Manage stored interval sequences",
	Long:  `Saves, loads and deletes named interval sequences in an embedded LevelDB database.`,
}

func withStore(fn func(st *store.Store) error) error {
	st, err := store.Open(storeDir)
	if err != nil {
		return err
	}
	defer st.Close()
	return fn(st)
}

var storeSaveCmd = &cobra.Command{
	Use:   "save",
	Short: "Save an intervals file as a named sequence",
	RunE: func(cmd *cobra.Command, args []string) error {
		seq, err := readSequence(storeFile)
		if err != nil {
			return err
		}
		defer metrics.Time("store.save", time.Now())
		return withStore(func(st *store.Store) error {
			name, err := st.Save(storeName, seq)
			if err != nil {
				return err
			}
			fmt.Println(name)
			return nil
		})
	},
}

var storeShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the analysis of a stored sequence",
	RunE: func(cmd *cobra.Command, args []string) error {
		defer metrics.Time("store.show", time.Now())
		return withStore(func(st *store.Store) error {
			seq, err := st.Load(storeName)
			if err != nil {
				return err
			}
			printAnalysis(seq)
			return nil
		})
	},
}

var storeListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored sequence names",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(st *store.Store) error {
			names, err := st.Names()
			if err != nil {
				return err
			}
			for _, name := range names {
				fmt.Println(name)
			}
			return nil
		})
	},
}

var storeDeleteCmd = &cobra.Command{
	Use:   "delete",
	Short: "Delete a stored sequence",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(st *store.Store) error {
			return st.Delete(storeName)
		})
	},
}
