package main

import "github.com/spf13/pflag"

// bind ties a viper key to a flag; a flag set on the command line wins
// over the environment and .env values.
func (c *cli) bind(key string, f *pflag.Flag) {
	if err := c.v.BindPFlag(key, f); err != nil {
		panic("pathlab: bind " + key + ": " + err.Error())
	}
}
