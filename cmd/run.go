package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"log/slog"

	"github.com/printline/printline-manager/config"
	httpapi "github.com/printline/printline-manager/internal/api/http"
	"github.com/printline/printline-manager/internal/apisrv/admin"
	"github.com/printline/printline-manager/internal/apisrv/auth"
	"github.com/printline/printline-manager/internal/apisrv/frontend"
	"github.com/printline/printline-manager/internal/cache"
	"github.com/printline/printline-manager/internal/entity"
	gerr "github.com/printline/printline-manager/internal/errors"
	"github.com/printline/printline-manager/internal/intake"
	"github.com/printline/printline-manager/internal/roles"
	"github.com/printline/printline-manager/internal/store"
	"github.com/printline/printline-manager/log"
	"github.com/spf13/cobra"
)

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig(cfgFile)
	if err != nil {
		return fmt.Errorf("cannot load a config %v", err.Error())
	}
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	logger := log.New(cfg.Logger)
	slog.SetDefault(logger)

	ms, err := store.New(ctx, cfg.DB)
	if err != nil {
		return fmt.Errorf("cannot connect to the database %v", err.Error())
	}
	defer ms.Close()

	di, err := ms.Masters().GetDictionaryInfo(ctx)
	if err != nil {
		return fmt.Errorf("cannot load the master dictionary %v", err.Error())
	}
	dict := cache.New(di)

	authServer, err := auth.New(&cfg.Auth, ms.Members())
	if err != nil {
		return fmt.Errorf("cannot create the auth server %v", err.Error())
	}

	if err := bootstrapAdmin(ctx, ms, authServer, cfg.Auth.MasterPassword); err != nil {
		return fmt.Errorf("cannot bootstrap the admin account %v", err.Error())
	}

	pipeline := intake.New(ms.Orders())
	frontendServer := frontend.New(pipeline, dict)
	adminServer := admin.New(ms, pipeline, dict, authServer)

	srv := httpapi.New(&cfg.HTTP)
	if err := srv.Start(ctx, adminServer, frontendServer, authServer); err != nil {
		return fmt.Errorf("cannot start the http server %v", err.Error())
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP)
	select {
	case s := <-sigCh:
		logger.With("signal", s.String()).Warn("signal received, exiting")
		if err := srv.Stop(ctx); err != nil {
			logger.Error("http server shutdown failed",
				slog.String("err", err.Error()),
			)
		}
		logger.Info("application exited")
	case <-srv.Done():
		logger.Error("application exited")
	}

	return nil
}

// bootstrapAdmin creates the initial super-admin account on a fresh
// install so the very first login works with the master password.
func bootstrapAdmin(ctx context.Context, ms *store.MYSQLStore, authServer *auth.Server, masterPassword string) error {
	const username = "admin"

	_, err := ms.Members().GetMemberByUsername(ctx, username)
	if err == nil {
		return nil
	}
	if !errors.Is(err, gerr.ErrMemberNotFound) {
		return err
	}

	hash, err := authServer.HashPassword(masterPassword)
	if err != nil {
		return err
	}
	_, err = ms.Members().AddMember(ctx, &entity.MemberInsert{
		UserName:     username,
		Nickname:     "Administrator",
		RoleCode:     roles.SuperAdmin,
		Active:       true,
		PasswordHash: hash,
	})
	if err != nil && !errors.Is(err, gerr.ErrUsernameTaken) {
		return err
	}
	slog.Default().InfoContext(ctx, "bootstrapped initial admin account",
		slog.String("username", username),
	)
	return nil
}
