package presets

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/crucial707/cronlens/cmd/cli/config"
	"github.com/crucial707/cronlens/cmd/cli/describe"
	"github.com/crucial707/cronlens/cmd/cli/output"
	"github.com/crucial707/cronlens/cmd/cli/root"
	"github.com/crucial707/cronlens/internal/models"
	"github.com/spf13/cobra"
)

var client = &http.Client{Timeout: 10 * time.Second}

func init() {
	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "Manage stored recurrence presets",
	}
	presetsCmd.AddCommand(listPresetsCmd(), createPresetCmd(), deletePresetCmd())
	root.GetRoot().AddCommand(presetsCmd)
}

// apiError turns a non-2xx response into an error carrying the API's message.
func apiError(resp *http.Response) error {
	b, _ := io.ReadAll(resp.Body)
	var body struct {
		Error  string            `json:"error"`
		Fields map[string]string `json:"fields"`
	}
	if json.Unmarshal(b, &body) == nil && body.Error != "" {
		if len(body.Fields) > 0 {
			return fmt.Errorf("API error (%d): %s %v", resp.StatusCode, body.Error, body.Fields)
		}
		return fmt.Errorf("API error (%d): %s", resp.StatusCode, body.Error)
	}
	return fmt.Errorf("API error (%d): %s", resp.StatusCode, string(b))
}

func authorizedRequest(method, path string, body io.Reader) (*http.Request, error) {
	token, err := config.ReadToken()
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequest(method, config.APIURL()+path, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+token)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return req, nil
}

func listPresetsCmd() *cobra.Command {
	var (
		jsonOut bool
		limit   int
		offset  int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List presets with their descriptions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			url := fmt.Sprintf("%s/v1/presets?limit=%d&offset=%d", config.APIURL(), limit, offset)
			resp, err := client.Get(url)
			if err != nil {
				return fmt.Errorf("call API: %w", err)
			}
			defer resp.Body.Close()
			if resp.StatusCode != http.StatusOK {
				return apiError(resp)
			}

			var list struct {
				Items []models.Preset `json:"items"`
				Total int             `json:"total"`
			}
			if err := json.NewDecoder(resp.Body).Decode(&list); err != nil {
				return fmt.Errorf("decode presets: %w", err)
			}

			out := cmd.OutOrStdout()
			if jsonOut {
				return output.PrintJSON(out, list.Items)
			}
			rows := make([][]interface{}, 0, len(list.Items))
			for _, p := range list.Items {
				rows = append(rows, []interface{}{p.ID, p.Name, p.Config.Pattern, p.Description})
			}
			output.RenderTable(out, []string{"ID", "Name", "Pattern", "Description"}, rows)
			fmt.Fprintf(out, "%d of %d presets\n", len(list.Items), list.Total)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&jsonOut, "json", "j", false, "print presets as JSON")
	cmd.Flags().IntVar(&limit, "limit", 50, "maximum presets to list (1-100)")
	cmd.Flags().IntVar(&offset, "offset", 0, "presets to skip")
	return cmd
}

func createPresetCmd() *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Store a recurrence preset",
		Long: `Store a recurrence preset. Requires a token (see "cronlens token").

Example:
  cronlens presets create --name standup -p weekly -d mon,fri -t 09:00 -m am`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := describe.ConfigFromFlags(cmd)
			if err != nil {
				return err
			}
			body, err := json.Marshal(map[string]interface{}{"name": name, "config": cfg})
			if err != nil {
				return err
			}

			req, err := authorizedRequest(http.MethodPost, "/v1/presets", bytes.NewReader(body))
			if err != nil {
				return err
			}
			resp, err := client.Do(req)
			if err != nil {
				return fmt.Errorf("call API: %w", err)
			}
			defer resp.Body.Close()
			if resp.StatusCode != http.StatusCreated {
				return apiError(resp)
			}

			var p models.Preset
			if err := json.NewDecoder(resp.Body).Decode(&p); err != nil {
				return fmt.Errorf("decode preset: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created preset %d (%s): %s\n", p.ID, p.Name, p.Description)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "preset name (required)")
	cmd.MarkFlagRequired("name")
	describe.AddConfigFlags(cmd)
	return cmd
}

func deletePresetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a preset",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := strconv.Atoi(args[0]); err != nil {
				return fmt.Errorf("invalid preset id %q", args[0])
			}
			req, err := authorizedRequest(http.MethodDelete, "/v1/presets/"+args[0], nil)
			if err != nil {
				return err
			}
			resp, err := client.Do(req)
			if err != nil {
				return fmt.Errorf("call API: %w", err)
			}
			defer resp.Body.Close()
			if resp.StatusCode != http.StatusNoContent {
				return apiError(resp)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Preset deleted")
			return nil
		},
	}
}
