// Command ldc3114-mqtt publishes button press and release events from
// an LDC3114 to an MQTT broker.
package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"

	"github.com/andresovela/ldc3114"
	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/host/v3"
)

func main() {
	bus := flag.String("bus", "", "Name of the I2C bus")
	broker := flag.String("broker", "tcp://localhost:1883", "MQTT broker URL")
	clientID := flag.String("id", "ldc3114", "MQTT client ID")
	topic := flag.String("topic", "ldc3114/buttons", "MQTT topic prefix")
	interval := flag.Duration("interval", 50*time.Millisecond, "Polling interval")
	flag.Parse()

	_, err := host.Init()
	if err != nil {
		log.Fatal(err)
	}

	b, err := i2creg.Open(*bus)
	if err != nil {
		log.Fatal(err)
	}
	defer b.Close()

	dev := ldc3114.New(b)

	opts := mqtt.NewClientOptions().AddBroker(*broker).SetClientID(*clientID)
	client := mqtt.NewClient(opts)
	if token := client.Connect(); token.Wait() && token.Error() != nil {
		log.Fatal(token.Error())
	}
	defer client.Disconnect(250)

	log.Printf("Publishing %s button events to %s", dev, *broker)

	states, err := dev.ReadOutputLogicStates()
	if err != nil {
		log.Fatal(err)
	}

	ticker := time.NewTicker(*interval)

	for {
		<-ticker.C

		current, err := dev.ReadOutputLogicStates()
		if err != nil {
			log.Print(err)
			continue
		}
		for ch := ldc3114.Channel0; ch <= ldc3114.Channel3; ch++ {
			if current.Out[ch] == states.Out[ch] {
				continue
			}
			event := "released"
			if current.Out[ch] {
				event = "pressed"
			}
			t := fmt.Sprintf("%s/%d", *topic, ch)
			if token := client.Publish(t, 0, false, event); token.Wait() && token.Error() != nil {
				log.Print(token.Error())
			}
			log.Printf("Channel %d: %s", ch, event)
		}
		states = current
	}
}
