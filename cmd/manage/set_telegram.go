package main

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	persistence "github.com/modeemi/spacestatus/infrastructure/persistence/repository"
	"github.com/spf13/cobra"
)

func newSetTelegramCmd() *cobra.Command {
	var (
		chatID   string
		botToken string
		enable   bool
		disable  bool
	)

	cmd := &cobra.Command{
		Use:   "set-telegram <id>",
		Short: "Configure Telegram announcements for a space",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if enable && disable {
				return errors.New("--enable and --disable are mutually exclusive")
			}

			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("space id must be an integer, got %q", args[0])
			}

			c, err := openAdmin()
			if err != nil {
				return err
			}

			ctx := context.Background()
			space, err := c.SpaceRepo.GetByID(ctx, id)
			if err != nil {
				if errors.Is(err, persistence.ErrRecordNotFound) {
					return fmt.Errorf("space %d not found", id)
				}
				return err
			}

			if cmd.Flags().Changed("chat-id") {
				space.TelegramChatID = chatID
			}
			if cmd.Flags().Changed("bot-token") {
				space.TelegramBotToken = botToken
			}
			if enable {
				space.TelegramEnabled = true
			}
			if disable {
				space.TelegramEnabled = false
			}

			if space.TelegramEnabled && !space.TelegramConfigured() {
				return errors.New("enabling requires both --chat-id and --bot-token to be set")
			}

			if err := c.SpaceRepo.Update(ctx, space); err != nil {
				return err
			}

			state := "disabled"
			if space.TelegramConfigured() {
				state = "enabled"
			}
			fmt.Printf("Telegram announcements for %q are now %s.\n", space.Name, state)
			return nil
		},
	}

	cmd.Flags().StringVar(&chatID, "chat-id", "", "Telegram chat id or @channel name")
	cmd.Flags().StringVar(&botToken, "bot-token", "", "Telegram bot token")
	cmd.Flags().BoolVar(&enable, "enable", false, "Enable announcements")
	cmd.Flags().BoolVar(&disable, "disable", false, "Disable announcements")

	return cmd
}
