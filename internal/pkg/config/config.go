package config

import (
	"strings"

	"github.com/spf13/viper"

	"github.com/gfssolutions/solar-api/internal/pkg/constants"
)

// Init binds configuration to the environment. Every key has a fixed
// fallback except the Resend credential: its absence means the email
// capability is simply not configured.
func Init() {
	viper.SetDefault(constants.ViperKeyHTTPAddr, ":8080")
	viper.SetDefault(constants.ViperKeyDatabaseURL, "postgres://localhost:5432/solar?sslmode=disable")
	viper.SetDefault(constants.ViperKeySiteOrigin, "http://localhost:3000")
	viper.SetDefault(constants.ViperKeyLeadToEmail, "info.gfspreventivi@gmail.com")
	viper.SetDefault(constants.ViperKeyLeadFromEmail, "info@gfssolutions.it")

	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()
}
