package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	persistence "github.com/modeemi/spacestatus/infrastructure/persistence/repository"
	"github.com/spf13/cobra"
)

func newDeleteSpaceCmd() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "delete-space <id>",
		Short: "Delete a space and all of its events by id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("space id must be an integer, got %q", args[0])
			}

			c, err := openAdmin()
			if err != nil {
				return err
			}

			space, err := c.SpaceRepo.GetByID(context.Background(), id)
			if err != nil {
				if errors.Is(err, persistence.ErrRecordNotFound) {
					return fmt.Errorf("space %d not found", id)
				}
				return err
			}

			if !yes {
				fmt.Printf("Are you sure you want to delete the space %q (ID: %d) and all of its events? [y/N]: ", space.Name, space.ID)
				reader := bufio.NewReader(os.Stdin)
				answer, _ := reader.ReadString('\n')
				answer = strings.ToLower(strings.TrimSpace(answer))
				if answer != "y" && answer != "yes" {
					fmt.Println("Deletion cancelled.")
					return nil
				}
			}

			if err := c.SpaceRepo.Delete(context.Background(), id); err != nil {
				return err
			}

			fmt.Printf("Space %q deleted.\n", space.Name)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Confirm deletion without prompting")

	return cmd
}
