// This file is part of Gopher8.
//
// Gopher8 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher8 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher8.  If not, see <https://www.gnu.org/licenses/>.

package prefs

import (
	"fmt"
	"strconv"
	"strings"
	"sync/atomic"
)

// Value represents the actual Go preference value.
type Value interface{}

// pref is implemented by every type that can be added to a Disk.
type pref interface {
	fmt.Stringer
	Set(value Value) error
	Get() Value
	Reset() error
}

// hooks are shared by all preference types. the pre hook can veto a new value
// by returning an error. the post hook is called after the value is stored.
type hooks struct {
	pre  func(value Value) error
	post func(value Value) error
}

// SetHookPre sets the callback function to be called just before the prefs
// value is updated. The callback is called even if the value has not
// changed.
func (h *hooks) SetHookPre(f func(value Value) error) {
	h.pre = f
}

// SetHookPost sets the callback function to be called just after the prefs
// value is updated. The callback is called even if the value has not
// changed.
func (h *hooks) SetHookPost(f func(value Value) error) {
	h.post = f
}

func (h *hooks) store(v *atomic.Value, nv Value) error {
	if h.pre != nil {
		if err := h.pre(nv); err != nil {
			return err
		}
	}
	v.Store(nv)
	if h.post != nil {
		if err := h.post(nv); err != nil {
			return err
		}
	}
	return nil
}

// Bool implements a boolean type in the prefs system.
type Bool struct {
	hooks
	value atomic.Value // bool
}

func (p *Bool) String() string {
	return strconv.FormatBool(p.Get().(bool))
}

// Set new value to Bool type. New value must be of type bool or string. A
// string value of anything other than "true" (case insensitive) will set the
// value to false.
func (p *Bool) Set(v Value) error {
	var nv bool
	switch v := v.(type) {
	case bool:
		nv = v
	case string:
		nv = strings.ToLower(strings.TrimSpace(v)) == "true"
	default:
		return fmt.Errorf("prefs: cannot convert %T to prefs.Bool", v)
	}
	return p.store(&p.value, nv)
}

// Get returns the raw pref value.
func (p *Bool) Get() Value {
	if ov := p.value.Load(); ov != nil {
		return ov.(bool)
	}
	return false
}

// Reset sets the boolean value to false.
func (p *Bool) Reset() error {
	return p.Set(false)
}

// String implements a string type in the prefs system.
type String struct {
	hooks
	maxLen int
	value  atomic.Value // string
}

func (p *String) String() string {
	return p.Get().(string)
}

// SetMaxLen sets the maximum length for a string when it is set. A value of
// zero or less means there is no limit. The existing string is cropped if
// necessary and the cropped part is lost.
func (p *String) SetMaxLen(max int) {
	p.maxLen = max
	if s := p.String(); p.maxLen > 0 && len(s) > p.maxLen {
		p.value.Store(s[:p.maxLen])
	}
}

// Set new value to String type. Values of any type are converted with the
// %v verb.
func (p *String) Set(v Value) error {
	nv := fmt.Sprintf("%v", v)
	if p.maxLen > 0 && len(nv) > p.maxLen {
		nv = nv[:p.maxLen]
	}
	return p.store(&p.value, nv)
}

// Get returns the raw pref value.
func (p *String) Get() Value {
	if ov := p.value.Load(); ov != nil {
		return ov.(string)
	}
	return ""
}

// Reset sets the string value to the empty string.
func (p *String) Reset() error {
	return p.Set("")
}

// Int implements an integer type in the prefs system.
type Int struct {
	hooks
	value atomic.Value // int
}

func (p *Int) String() string {
	return strconv.Itoa(p.Get().(int))
}

// Set new value to Int type. New value can be an integer type or a string.
func (p *Int) Set(v Value) error {
	var nv int
	switch v := v.(type) {
	case int:
		nv = v
	case int32:
		nv = int(v)
	case int64:
		nv = int(v)
	case uint8:
		nv = int(v)
	case string:
		var err error
		nv, err = strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("prefs: cannot convert %q to prefs.Int: %w", v, err)
		}
	default:
		return fmt.Errorf("prefs: cannot convert %T to prefs.Int", v)
	}
	return p.store(&p.value, nv)
}

// Get returns the raw pref value.
func (p *Int) Get() Value {
	if ov := p.value.Load(); ov != nil {
		return ov.(int)
	}
	return 0
}

// Reset sets the int value to zero.
func (p *Int) Reset() error {
	return p.Set(0)
}

// Float implements a floating point type in the prefs system.
type Float struct {
	hooks
	value atomic.Value // float64
}

func (p *Float) String() string {
	return fmt.Sprintf("%.3f", p.Get().(float64))
}

// Set new value to Float type. New value can be a float, an int or a string.
func (p *Float) Set(v Value) error {
	var nv float64
	switch v := v.(type) {
	case float64:
		nv = v
	case float32:
		nv = float64(v)
	case int:
		nv = float64(v)
	case string:
		var err error
		nv, err = strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return fmt.Errorf("prefs: cannot convert %q to prefs.Float: %w", v, err)
		}
	default:
		return fmt.Errorf("prefs: cannot convert %T to prefs.Float", v)
	}
	return p.store(&p.value, nv)
}

// Get returns the raw pref value.
func (p *Float) Get() Value {
	if ov := p.value.Load(); ov != nil {
		return ov.(float64)
	}
	return 0.0
}

// Reset sets the float value to zero.
func (p *Float) Reset() error {
	return p.Set(0.0)
}
