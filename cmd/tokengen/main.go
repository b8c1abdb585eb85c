// Command tokengen mints an access token for the journal using the server
// configuration (secret key and token validity). With -newsecret it prints
// a fresh random secret key instead.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/dmitrijs2005/moodlog/internal/flagx"
	"github.com/dmitrijs2005/moodlog/internal/server/auth"
	"github.com/dmitrijs2005/moodlog/internal/server/config"
	"github.com/dmitrijs2005/moodlog/internal/shared"
)

func main() {

	cfg := config.LoadConfig()

	fs := flag.NewFlagSet("tokengen", flag.ContinueOnError)
	subject := fs.String("subject", "journal", "token subject")
	newSecret := fs.Bool("newsecret", false, "print a random secret key and exit")
	if err := fs.Parse(flagx.FilterArgs(os.Args[1:], []string{"-subject", "-newsecret"})); err != nil {
		log.Fatalf("%v", err)
	}

	if *newSecret {
		secret, err := shared.MakeRandHexString(32)
		if err != nil {
			log.Fatalf("%v", err)
		}
		fmt.Println(secret)
		return
	}

	if !cfg.AuthEnabled() {
		log.Fatalf("secret key is empty, set MOODLOG_SECRET_KEY or -s")
	}

	token, err := auth.GenerateToken(*subject, []byte(cfg.SecretKey), cfg.AccessTokenValidityDuration)
	if err != nil {
		log.Fatalf("%v", err)
	}

	fmt.Println(token)
}
