package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"syscall"

	"github.com/modeemi/spacestatus/domain/model"
	persistence "github.com/modeemi/spacestatus/infrastructure/persistence/repository"
	"github.com/modeemi/spacestatus/infrastructure/security"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

func newCreateSpaceCmd() *cobra.Command {
	var (
		name         string
		logo         string
		url          string
		address      string
		latStr       string
		lonStr       string
		contactEmail string
		password     string
	)

	cmd := &cobra.Command{
		Use:   "create-space",
		Short: "Create a new space interactively or via flags",
		RunE: func(cmd *cobra.Command, args []string) error {
			reader := bufio.NewReader(os.Stdin)

			if name == "" {
				name = prompt(reader, "Space name")
				if name == "" {
					return errors.New("space name is required")
				}
			}
			if !cmd.Flags().Changed("logo") {
				logo = prompt(reader, "Logo URL (optional)")
			}
			if !cmd.Flags().Changed("url") {
				url = prompt(reader, "Website URL (optional)")
			}
			if !cmd.Flags().Changed("address") {
				address = prompt(reader, "Address (optional)")
			}
			if !cmd.Flags().Changed("lat") {
				latStr = prompt(reader, "Latitude (optional)")
			}
			if !cmd.Flags().Changed("lon") {
				lonStr = prompt(reader, "Longitude (optional)")
			}
			if !cmd.Flags().Changed("contact-email") {
				contactEmail = prompt(reader, "Contact email (optional)")
			}

			lat, err := parseCoordinate(latStr)
			if err != nil {
				return fmt.Errorf("invalid latitude: %w", err)
			}
			lon, err := parseCoordinate(lonStr)
			if err != nil {
				return fmt.Errorf("invalid longitude: %w", err)
			}

			if password == "" {
				password, err = promptPassword()
				if err != nil {
					return err
				}
			}

			hashed, err := security.HashPassword(password)
			if err != nil {
				return fmt.Errorf("hash password: %w", err)
			}

			c, err := openAdmin()
			if err != nil {
				return err
			}

			space := &model.Space{
				Name:         name,
				Logo:         logo,
				URL:          url,
				Address:      address,
				Lat:          lat,
				Lon:          lon,
				ContactEmail: contactEmail,
				PasswordHash: hashed,
			}

			if err := c.SpaceRepo.Create(context.Background(), space); err != nil {
				if errors.Is(err, persistence.ErrDuplicateName) {
					return fmt.Errorf("a space with the name %q already exists", name)
				}
				return err
			}

			fmt.Printf("Space %q created with id %d\n", space.Name, space.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Space name")
	cmd.Flags().StringVar(&logo, "logo", "", "Logo URL")
	cmd.Flags().StringVar(&url, "url", "", "Website URL")
	cmd.Flags().StringVar(&address, "address", "", "Address")
	cmd.Flags().StringVar(&latStr, "lat", "", "Latitude")
	cmd.Flags().StringVar(&lonStr, "lon", "", "Longitude")
	cmd.Flags().StringVar(&contactEmail, "contact-email", "", "Contact email")
	cmd.Flags().StringVar(&password, "password", "", "Basic auth password (leave empty to prompt)")

	return cmd
}

func prompt(reader *bufio.Reader, label string) string {
	fmt.Printf("%s: ", label)
	line, _ := reader.ReadString('\n')
	return strings.TrimSpace(line)
}

// promptPassword reads the secret without echoing it, and never logs it.
func promptPassword() (string, error) {
	fmt.Print("Basic auth password: ")
	secret, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Println()
	if err != nil {
		return "", fmt.Errorf("read password: %w", err)
	}
	if len(secret) == 0 {
		return "", errors.New("password must not be empty")
	}
	return string(secret), nil
}

func parseCoordinate(s string) (float64, error) {
	if s == "" {
		return 0, nil
	}
	return strconv.ParseFloat(s, 64)
}
