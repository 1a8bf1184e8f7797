// Package categories handles taxonomy listing and extension commands
package categories

import (
	"fmt"

	"github.com/birosrichard/simple-expense-analyzer/cmd/root"
	"github.com/birosrichard/simple-expense-analyzer/internal/config"
	"github.com/birosrichard/simple-expense-analyzer/internal/models"
	"github.com/birosrichard/simple-expense-analyzer/internal/store"

	"github.com/spf13/cobra"
)

// Cmd represents the categories command
var Cmd = &cobra.Command{
	Use:   "categories",
	Short: "List the category taxonomy",
	Long: `List the built-in category taxonomy merged with user-defined category
names, or add a new user-defined name with --add. User-defined names
extend the taxonomy for manual assignment only; keyword inference
always uses the built-in table.`,
	Run: categoriesFunc,
}

func init() {
	Cmd.Flags().StringVarP(&root.NewCategory, "add", "a", "", "Add a user-defined category name")
}

func categoriesFunc(cmd *cobra.Command, args []string) {
	cfg, err := config.InitializeConfig()
	if err != nil {
		root.Log.Fatalf("Error loading configuration: %v", err)
	}

	categoryStore := store.NewUserCategoryStore(cfg.Data.CategoriesFile)

	if root.NewCategory != "" {
		if err := categoryStore.Add(root.NewCategory); err != nil {
			root.Log.Fatalf("Error adding category: %v", err)
		}
		root.Log.Infof("Category %q added", root.NewCategory)
	}

	userDefined, err := categoryStore.Load()
	if err != nil {
		root.Log.Fatalf("Error loading user categories: %v", err)
	}

	for _, name := range models.AllCategories(userDefined) {
		fmt.Println(name)
	}
}
