package graphql

import "sync"

// ThunkFieldsObject is either a FieldMapConfig or a function
// returning one, allowing Object/Interface fields to reference types that
// are still being constructed (mutual recursion).
type ThunkFieldsObject interface{}

// ThunkFieldsInput is the InputObject analogue of ThunkFieldsObject.
type ThunkFieldsInput interface{}

// ThunkInterfaces is either []*Interface or a func() []*Interface.
type ThunkInterfaces interface{}

// ThunkTypes is either []*Object or a func() []*Object, used by Union.
type ThunkTypes interface{}

// fieldsCell memoizes the realization of an Object/Interface's field map.
// Realization happens at most once; every call returns the cached result,
// or panics with the cached error's message.
type fieldsCell struct {
	once   sync.Once
	thunk  ThunkFieldsObject
	result FieldMap
	err    error
}

func (c *fieldsCell) get(realize func(ThunkFieldsObject) (FieldMap, error)) FieldMap {
	c.once.Do(func() {
		c.result, c.err = realize(c.thunk)
	})
	if c.err != nil {
		panic(c.err.Error())
	}
	return c.result
}

// inputFieldsCell is the InputObject analogue of fieldsCell.
type inputFieldsCell struct {
	once   sync.Once
	thunk  ThunkFieldsInput
	result InputFieldMap
	err    error
}

func (c *inputFieldsCell) get(realize func(ThunkFieldsInput) (InputFieldMap, error)) InputFieldMap {
	c.once.Do(func() {
		c.result, c.err = realize(c.thunk)
	})
	if c.err != nil {
		panic(c.err.Error())
	}
	return c.result
}

// interfacesCell memoizes an Object/Interface's implemented-interfaces list.
type interfacesCell struct {
	once   sync.Once
	thunk  ThunkInterfaces
	result []*Interface
	err    error
}

func (c *interfacesCell) get(realize func(ThunkInterfaces) ([]*Interface, error)) []*Interface {
	c.once.Do(func() {
		c.result, c.err = realize(c.thunk)
	})
	if c.err != nil {
		panic(c.err.Error())
	}
	return c.result
}

// typesCell memoizes a Union's member list.
type typesCell struct {
	once   sync.Once
	thunk  ThunkTypes
	result []*Object
	err    error
}

func (c *typesCell) get(realize func(ThunkTypes) ([]*Object, error)) []*Object {
	c.once.Do(func() {
		c.result, c.err = realize(c.thunk)
	})
	if c.err != nil {
		panic(c.err.Error())
	}
	return c.result
}
