package command

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"golang.org/x/crypto/bcrypt"

	"github.com/pm-platform/registry/auth"
	"github.com/pm-platform/registry/store"
)

var (
	credentialEmail    string
	credentialPassword string
	credentialRole     string
)

var credentialsCmd = &cobra.Command{
	Use:   "credentials",
	Short: "Manage login credentials",
}

var credentialsCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a login credential with a bcrypt-hashed password",
	RunE: func(cmd *cobra.Command, args []string) error {
		hash, err := bcrypt.GenerateFromPassword([]byte(credentialPassword), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("error hashing password: %w", err)
		}

		ctx := context.Background()
		db, disconnect, err := connect(ctx)
		if err != nil {
			return err
		}
		defer disconnect()

		credential := auth.Credential{
			Email:        credentialEmail,
			PasswordHash: string(hash),
			Role:         credentialRole,
		}
		if _, err := db.Collection("credentials").InsertOne(ctx, credential); err != nil {
			return fmt.Errorf("error inserting credential: %w", err)
		}

		cmd.Printf("created credential for %s\n", credentialEmail)
		return nil
	},
}

func connect(ctx context.Context) (*mongo.Database, func(), error) {
	cfg, err := store.NewConfig()
	if err != nil {
		return nil, nil, err
	}

	cs, err := cfg.GetConnectionString()
	if err != nil {
		return nil, nil, err
	}

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cs))
	if err != nil {
		return nil, nil, fmt.Errorf("unable to connect to mongo: %w", err)
	}

	disconnect := func() {
		_ = client.Disconnect(ctx)
	}
	return client.Database(cfg.DatabaseName), disconnect, nil
}

func init() {
	credentialsCreateCmd.Flags().StringVar(&credentialEmail, "email", "", "Credential email")
	credentialsCreateCmd.Flags().StringVar(&credentialPassword, "password", "", "Credential password")
	credentialsCreateCmd.Flags().StringVar(&credentialRole, "role", "ADMIN", "Credential role")
	_ = credentialsCreateCmd.MarkFlagRequired("email")
	_ = credentialsCreateCmd.MarkFlagRequired("password")

	credentialsCmd.AddCommand(credentialsCreateCmd)
	rootCmd.AddCommand(credentialsCmd)
}
