package hourvault

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hourvault/hourvault/internal/backend"
)

func buildProfileCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "View or edit public seller profiles",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "show [address]",
		Short: "Show a profile, the connected wallet's by default",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if a.backend == nil {
				return errNoBackend
			}
			address, err := addressArg(a, args)
			if err != nil {
				return err
			}

			profile := a.backend.GetProfile(cmd.Context(), address)
			if profile == nil {
				fmt.Fprintf(a.out, "No profile for %s\n", a.label(address))

				return nil
			}
			printProfile(a, address, profile)

			return nil
		},
	})

	cmd.AddCommand(buildProfileSetCmd(a))

	return cmd
}

func buildProfileSetCmd(a *app) *cobra.Command {
	var profile backend.UserProfile

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Publish the connected wallet's profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			if a.backend == nil {
				return errNoBackend
			}
			address, err := a.requireAddress()
			if err != nil {
				return err
			}

			saved, err := a.backend.SaveProfile(cmd.Context(), address, profile)
			if err != nil {
				return err
			}
			printProfile(a, address, saved)

			return nil
		},
	}

	cmd.Flags().StringVar(&profile.Username, "username", "", "Username")
	cmd.Flags().StringVar(&profile.DisplayName, "display-name", "", "Display name")
	cmd.Flags().StringVar(&profile.Bio, "bio", "", "Short bio")
	cmd.Flags().StringVar(&profile.AvatarURL, "avatar-url", "", "Avatar image URL")
	cmd.Flags().StringVar(&profile.SocialLinks.Twitter, "twitter", "", "Twitter handle")
	cmd.Flags().StringVar(&profile.SocialLinks.GitHub, "github", "", "GitHub handle")
	_ = cmd.MarkFlagRequired("username")

	return cmd
}

func addressArg(a *app, args []string) (string, error) {
	if len(args) == 1 {
		return args[0], nil
	}

	return a.requireAddress()
}

func printProfile(a *app, address string, p *backend.UserProfile) {
	name := p.DisplayName
	if name == "" {
		name = p.Username
	}
	fmt.Fprintf(a.out, "%s (@%s)  %s\n", name, p.Username, a.label(address))
	if p.Bio != "" {
		fmt.Fprintf(a.out, "  %s\n", p.Bio)
	}
	if p.SocialLinks.Twitter != "" {
		fmt.Fprintf(a.out, "  twitter: %s\n", p.SocialLinks.Twitter)
	}
	if p.SocialLinks.GitHub != "" {
		fmt.Fprintf(a.out, "  github:  %s\n", p.SocialLinks.GitHub)
	}
}
