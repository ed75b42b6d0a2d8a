package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bazaar-shop/bazaar/client"
	"github.com/bazaar-shop/bazaar/client/auth"
)

func newRegisterCmd(a *app) *cobra.Command {
	var req client.RegisterRequest

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create a new account",
		RunE: a.run(func(ctx context.Context, cmd *cobra.Command, _ []string) error {
			a.log.Debug().Str("email", req.Email).Msg("registering")
			doc, err := a.client.Register(ctx, req)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), doc)
		}),
	}

	cmd.Flags().StringVar(&req.Name, "name", "", "Display name (required)")
	cmd.Flags().StringVar(&req.Email, "email", "", "Email address (required)")
	cmd.Flags().StringVar(&req.Password, "password", "", "Password (required)")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}

func newLoginCmd(a *app) *cobra.Command {
	var req client.LoginRequest

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in and store the access token",
		RunE: a.run(func(ctx context.Context, cmd *cobra.Command, _ []string) error {
			doc, err := a.client.Login(ctx, req)
			if err != nil {
				return err
			}
			token, err := accessToken(doc)
			if err != nil {
				return err
			}
			if err := a.store.SignIn(ctx, token); err != nil {
				return fmt.Errorf("store token: %w", err)
			}
			a.log.Info().Str("email", req.Email).Msg("logged in")
			return printJSON(cmd.OutOrStdout(), doc)
		}),
	}

	cmd.Flags().StringVar(&req.Email, "email", "", "Email address (required)")
	cmd.Flags().StringVar(&req.Password, "password", "", "Password (required)")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}

// accessToken pulls the bearer token out of a login response.
func accessToken(doc client.Document) (string, error) {
	var body struct {
		AccessToken string `json:"accessToken"`
		Token       string `json:"token"`
		Data        struct {
			AccessToken string `json:"accessToken"`
		} `json:"data"`
	}
	if err := json.Unmarshal(doc, &body); err != nil {
		return "", fmt.Errorf("decode login response: %w", err)
	}
	for _, tok := range []string{body.AccessToken, body.Data.AccessToken, body.Token} {
		if tok != "" {
			return tok, nil
		}
	}
	return "", errors.New("login response carried no access token")
}

func newLogoutCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "End the session and forget the stored token",
		RunE: a.run(func(ctx context.Context, cmd *cobra.Command, _ []string) error {
			tok, err := a.token(ctx)
			if err != nil {
				return err
			}
			err = endSession(ctx, a.store, tok, func(ctx context.Context, tok string) error {
				_, err := a.client.Logout(ctx, tok)
				return err
			})
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), "Logged out")
			return err
		}),
	}
}

// endSession logs out on the backend and drops the local token even when
// that call fails. Both failures are reported.
func endSession(ctx context.Context, store *auth.Store, token string, logout func(context.Context, string) error) error {
	logoutErr := logout(ctx, token)
	if err := store.SignOut(ctx); err != nil {
		return errors.Join(fmt.Errorf("remove token: %w", err), logoutErr)
	}
	return logoutErr
}

func newStatusCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Verify the stored token and print the login state",
		RunE: a.run(func(ctx context.Context, cmd *cobra.Command, _ []string) error {
			state := a.store.Initialize(ctx)
			_, err := fmt.Fprintln(cmd.OutOrStdout(), state)
			return err
		}),
	}
}

func newWhoamiCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the account behind the stored token",
		RunE: a.run(func(ctx context.Context, cmd *cobra.Command, _ []string) error {
			tok, err := a.token(ctx)
			if err != nil {
				return err
			}
			user, err := a.client.FetchUserDetails(ctx, tok)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), user)
		}),
	}
}
