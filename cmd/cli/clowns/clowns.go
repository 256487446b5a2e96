package clowns

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/docport/doctor-portal/cmd/cli/config"
	"github.com/docport/doctor-portal/cmd/cli/output"
	"github.com/docport/doctor-portal/internal/models"
	"github.com/spf13/cobra"
)

// ==========================
// Init Clowns
// ==========================
func InitClowns(rootCmd *cobra.Command) {

	clownsCmd := &cobra.Command{
		Use:   "clowns",
		Short: "Manage clown records",
	}

	clownsCmd.AddCommand(
		listClownsCmd(),
		addClownCmd(),
	)

	rootCmd.AddCommand(clownsCmd)
}

// ==========================
// LIST
// ==========================
func listClownsCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List clown records",
		Run: func(cmd *cobra.Command, args []string) {

			resp, err := http.Get(config.APIURL() + "/api/clowns")
			if err != nil {
				fmt.Println(err)
				return
			}
			defer resp.Body.Close()

			var clowns []models.Clown
			if err := json.NewDecoder(resp.Body).Decode(&clowns); err != nil {
				fmt.Println(err)
				return
			}

			if asJSON {
				b, _ := json.MarshalIndent(clowns, "", "  ")
				fmt.Println(string(b))
				return
			}

			rows := make([][]interface{}, 0, len(clowns))
			for _, c := range clowns {
				rows = append(rows, []interface{}{c.ID, c.Name, c.Color, c.Age})
			}
			output.RenderTable([]string{"ID", "Name", "Color", "Age"}, rows)
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print raw JSON instead of a table")

	return cmd
}

// ==========================
// ADD
// ==========================
func addClownCmd() *cobra.Command {

	var name string
	var color string
	var age int

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a clown record",
		Run: func(cmd *cobra.Command, args []string) {

			payload := map[string]interface{}{
				"name":  name,
				"color": color,
				"age":   age,
			}

			body, _ := json.Marshal(payload)

			resp, err := http.Post(config.APIURL()+"/api/clowns", "application/json", bytes.NewBuffer(body))
			if err != nil {
				fmt.Println(err)
				return
			}
			defer resp.Body.Close()

			if resp.StatusCode != http.StatusCreated {
				var out map[string]interface{}
				json.NewDecoder(resp.Body).Decode(&out)
				fmt.Println("API error:", out)
				return
			}

			var clown models.Clown
			if err := json.NewDecoder(resp.Body).Decode(&clown); err != nil {
				fmt.Println(err)
				return
			}
			fmt.Println("Created clown " + strconv.Itoa(clown.ID) + " (" + clown.Name + ")")
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "clown name")
	cmd.Flags().StringVar(&color, "color", "", "clown color")
	cmd.Flags().IntVar(&age, "age", 0, "clown age")

	return cmd
}
