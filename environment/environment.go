// This file is part of rvboard.
//
// rvboard is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// rvboard is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with rvboard.  If not, see <https://www.gnu.org/licenses/>.

// Package environment carries the platform-wide settings of one board
// instance. An Environment is created before the hardware and is passed to
// the hardware constructors, which read the preferences from it instead of
// from any global state.
package environment

import (
	"github.com/google/uuid"

	"github.com/rvboard/rvboard/hardware/preferences"
)

// Label is used to name the environment.
type Label string

// Environment is used to provide context for a board instance.
type Environment struct {
	// unique label of the instance. used as the owner name when claiming
	// exclusive resources and in log entries
	Label Label

	// the platform preferences. the hardware packages do not change these
	Prefs *preferences.Preferences

	// if Quiet is true the environment does not allow logging
	Quiet bool
}

// NewEnvironment is the preferred method of initialisation for the
// Environment type. A nil prefs argument results in default preferences.
func NewEnvironment(prefs *preferences.Preferences) *Environment {
	if prefs == nil {
		prefs = preferences.NewPreferences()
	}
	return &Environment{
		Label: Label(uuid.NewString()),
		Prefs: prefs,
	}
}

// AllowLogging implements the logger.Permission interface.
func (env *Environment) AllowLogging() bool {
	return !env.Quiet
}

// Short returns an abbreviated form of the label, suitable for display.
func (env *Environment) Short() string {
	if len(env.Label) > 8 {
		return string(env.Label[:8])
	}
	return string(env.Label)
}
