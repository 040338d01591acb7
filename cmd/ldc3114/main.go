package main

import (
	"encoding/json"
	"flag"
	"log"
	"os"
	"time"

	"github.com/andresovela/ldc3114"
	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/host/v3"
)

func main() {
	bus := flag.String("bus", "", "Name of the I2C bus")
	configFile := flag.String("config", "", "JSON device configuration file")
	dump := flag.Bool("dump", false, "Print the device configuration and exit")
	interval := flag.Duration("interval", time.Second, "Polling interval")
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

	id, err := dev.ReadDeviceID()
	if err != nil {
		log.Fatal(err)
	}
	mid, err := dev.ReadManufacturerID()
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("Device ID: %#04x, manufacturer ID: %#04x", id, mid)
	if mid != ldc3114.ManufacturerID {
		log.Printf("Unexpected manufacturer ID, expected %#04x", ldc3114.ManufacturerID)
	}

	if *dump {
		cfg, err := dev.ReadDeviceConfiguration()
		if err != nil {
			log.Fatal(err)
		}
		data, err := json.MarshalIndent(cfg, "", "  ")
		if err != nil {
			log.Fatal(err)
		}
		os.Stdout.Write(append(data, '\n'))
		return
	}

	if *configFile != "" {
		cfg := ldc3114.DefaultDeviceConfig()
		data, err := os.ReadFile(*configFile)
		if err != nil {
			log.Fatal(err)
		}
		if err := json.Unmarshal(data, cfg); err != nil {
			log.Fatalf("parse %s: %v", *configFile, err)
		}
		if err := configure(dev, cfg); err != nil {
			log.Fatal(err)
		}
	}

	ticker := time.NewTicker(*interval)

	for {
		states, err := dev.ReadOutputLogicStates()
		if err != nil {
			log.Print(err)
		}
		for ch := ldc3114.Channel0; ch <= ldc3114.Channel3; ch++ {
			data, err := dev.ReadButtonData(ch)
			if err != nil {
				log.Print(err)
				continue
			}
			f, err := dev.ReadFrequency(ch)
			if err != nil {
				log.Print(err)
				continue
			}
			log.Printf("Channel %d: out=%t data=%d sensor=%s", ch, states.Out[ch], data, f)
		}

		<-ticker.C
	}
}

// configure applies cfg in configuration mode and returns the device to
// normal mode, waiting for the ready flags around each transition.
func configure(dev *ldc3114.Dev, cfg *ldc3114.DeviceConfig) error {
	if err := dev.ConfigMode(); err != nil {
		return err
	}
	if err := waitFor(dev.IsReadyToWrite); err != nil {
		return err
	}
	if err := dev.SetDeviceConfiguration(cfg); err != nil {
		return err
	}
	if err := dev.NormalMode(); err != nil {
		return err
	}
	return waitFor(dev.IsChipReady)
}

func waitFor(poll func() (bool, error)) error {
	for {
		ok, err := poll()
		if err != nil {
			return err
		}
		if ok {
			return nil
		}
		time.Sleep(10 * time.Millisecond)
	}
}
