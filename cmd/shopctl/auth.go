package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"healthshop-client/internal/api"
)

func loginCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "login <email> <password>",
		Short: "Sign in and save the session token",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a := newApp()
			if err := a.auth.Login(cmd.Context(), args[0], args[1]); err != nil {
				return err
			}
			user := a.auth.User()
			fmt.Printf("Logged in as %s (%s)\n", user.FirstName, user.Email)
			return nil
		},
	}
}

func registerCmd() *cobra.Command {
	var lastName, phone string
	cmd := &cobra.Command{
		Use:   "register <email> <password> <first-name>",
		Short: "Create an account and sign in",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			a := newApp()
			in := api.RegisterInput{
				Email:     args[0],
				Password:  args[1],
				FirstName: args[2],
				LastName:  lastName,
				Phone:     phone,
			}
			if err := a.auth.Register(cmd.Context(), in); err != nil {
				return err
			}
			fmt.Printf("Account created, logged in as %s\n", args[0])
			return nil
		},
	}
	cmd.Flags().StringVar(&lastName, "last-name", "", "last name")
	cmd.Flags().StringVar(&phone, "phone", "", "phone number")
	return cmd
}

func logoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Sign out and discard the saved session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a := newApp()
			a.auth.Logout()
			fmt.Println("Logged out")
			return nil
		},
	}
}

func whoamiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the current session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a := newApp()
			a.auth.LoadUser()
			if !a.auth.IsAuthenticated() {
				fmt.Println("Not logged in")
				return nil
			}
			// hit the API so a stale token is detected and purged
			user, err := a.client.Me(cmd.Context())
			if err != nil {
				a.auth.SyncWithStorage()
				return err
			}
			fmt.Printf("%s %s <%s> role=%s\n", user.FirstName, user.LastName, user.Email, user.Role)
			return nil
		},
	}
}
