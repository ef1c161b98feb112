package main

// @title WhatsApp Lead Bot APIs
// @version 1.0
// @description WhatsApp Cloud API webhook that collects product enquiries, plus a read-only admin API.

// @contact.name API Support

// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:3000
// @BasePath /
// @schemes http
import (
	_ "whatsapp-leadbot/docs"
	protocol "whatsapp-leadbot/protocal"

	_ "github.com/arsmn/fiber-swagger/v2"
	"github.com/sirupsen/logrus"
)

func main() {
	err := protocol.ServeHTTP()
	if err != nil {
		logrus.Fatalln(err)
	}
}
