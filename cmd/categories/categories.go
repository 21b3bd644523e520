// Package categories handles the category listing command
package categories

import (
	"fmt"
	"text/tabwriter"

	"fjacquet/fincontrol/cmd/common"
	"fjacquet/fincontrol/cmd/root"
	"fjacquet/fincontrol/internal/models"

	"github.com/spf13/cobra"
)

var (
	rootsOnly bool
	parentID  string
	format    string
)

// Cmd represents the categories command
var Cmd = &cobra.Command{
	Use:   "categories",
	Short: "List stored categories",
	Args:  cobra.NoArgs,
	RunE:  categoriesFunc,
}

func init() {
	Cmd.Flags().BoolVar(&rootsOnly, "roots", false, "Only list top-level categories")
	Cmd.Flags().StringVar(&parentID, "parent", "", "Only list subcategories of this category ID")
	Cmd.Flags().StringVarP(&format, "format", "f", "text", "Output format: text, json, xml or yaml")
}

func categoriesFunc(cmd *cobra.Command, args []string) error {
	c, err := root.GetContainer()
	if err != nil {
		return err
	}

	ctx := common.Context(cmd)
	svc := c.GetService()

	var list []models.Category
	switch {
	case parentID != "":
		list, err = svc.ListSubcategories(ctx, parentID)
	case rootsOnly:
		list, err = svc.ListRootCategories(ctx)
	default:
		list, err = svc.ListCategories(ctx)
	}
	if err != nil {
		return err
	}

	if format != "text" {
		return common.Render(cmd, list, format, "")
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tCOLOR\tICON\tPARENT")
	for _, category := range list {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			category.ID, category.Name, category.Color, category.Icon, category.ParentCategoryID)
	}
	return w.Flush()
}
