package core

import (
	"fmt"
	"reflect"
)

// DrawFields draws a row for every exported field of the struct target points
// to. Bool, string and integer fields are editable; anything else is shown
// read-only. Fields tagged `inspector:"-"` are skipped.
func (c *Context) DrawFields(target any) {
	v := reflect.ValueOf(target)
	if v.Kind() != reflect.Pointer || v.IsNil() || v.Elem().Kind() != reflect.Struct {
		c.LabelValue("Value", fmt.Sprint(target))
		return
	}
	v = v.Elem()
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() || f.Tag.Get("inspector") == "-" {
			continue
		}
		label := Nicify(f.Name)
		fv := v.Field(i)
		switch fv.Kind() {
		case reflect.Bool:
			b := fv.Bool()
			if c.Toggle(label, &b) {
				fv.SetBool(b)
			}
		case reflect.String:
			s := fv.String()
			if c.TextField(label, &s) {
				fv.SetString(s)
			}
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			n := int(fv.Int())
			if c.IntField(label, &n) && !fv.OverflowInt(int64(n)) {
				fv.SetInt(int64(n))
			}
		default:
			c.LabelValue(label, fmt.Sprint(fv.Interface()))
		}
	}
}

// FieldsDefinition draws every field of its target. Hosts use it for targets
// without a dedicated definition.
type FieldsDefinition struct {
	Target any
}

func (d FieldsDefinition) Body(c *Context) { c.DrawFields(d.Target) }
