package js

// Context is the set of grammar parameters and restrictions in effect for a production. It is passed by value:
// a nested region derives its own copy and sibling productions keep using the original.
type Context uint32

// Context flags.
const (
	ctxStrict Context = 1 << iota
	ctxModule
	ctxAllowIn
	ctxYield         // yield is an operator, generator body
	ctxAwait         // await is an operator, async body or module top level
	ctxIteration     // break and continue allowed
	ctxSwitch        // break allowed
	ctxFunction      // return allowed
	ctxSuperProperty // super.x and super[x] allowed
	ctxSuperCall     // super() allowed
	ctxNewTarget     // new.target allowed
	ctxParams        // formal parameters, yield and await expressions disallowed
	ctxStaticBlock   // class static block, await and arguments disallowed
	ctxClassField    // class field initializer, arguments disallowed
	ctxWebCompat     // legacy web forms allowed in sloppy mode
	ctxExperimental
	ctxJSX
)

// inherited are the flags that survive a function boundary.
const inherited = ctxStrict | ctxModule | ctxWebCompat | ctxExperimental | ctxJSX

func (ctx Context) has(flag Context) bool {
	return ctx&flag != 0
}

func (ctx Context) with(flag Context) Context {
	return ctx | flag
}

func (ctx Context) without(flag Context) Context {
	return ctx &^ flag
}

// sloppyWebCompat returns true when the legacy web forms of the grammar are accepted.
func (ctx Context) sloppyWebCompat() bool {
	return ctx&(ctxWebCompat|ctxStrict) == ctxWebCompat
}

// function derives the context of the parameters and body of a non-arrow function.
func (ctx Context) function(async, generator bool) Context {
	fctx := ctx&inherited | ctxAllowIn | ctxFunction | ctxNewTarget
	if async {
		fctx |= ctxAwait
	}
	if generator {
		fctx |= ctxYield
	}
	return fctx
}

// method derives the context of a method, which additionally allows super properties.
func (ctx Context) method(async, generator, constructor, derived bool) Context {
	fctx := ctx.function(async, generator) | ctxSuperProperty
	if constructor && derived {
		fctx |= ctxSuperCall
	}
	return fctx
}

// arrow derives the context of an arrow function body. Arrow functions inherit super, new.target and the class field
// restrictions of their enclosing context.
func (ctx Context) arrow(async bool) Context {
	actx := ctx&(inherited|ctxSuperProperty|ctxSuperCall|ctxNewTarget|ctxStaticBlock|ctxClassField) | ctxAllowIn | ctxFunction
	if async {
		actx |= ctxAwait
	}
	return actx
}

// classBody derives the context of a class body, which is always strict.
func (ctx Context) classBody() Context {
	return ctx&(inherited|ctxYield|ctxAwait) | ctxStrict | ctxAllowIn
}

// fieldInitializer derives the context of a class field initializer.
func (ctx Context) fieldInitializer() Context {
	return ctx&inherited | ctxAllowIn | ctxSuperProperty | ctxNewTarget | ctxClassField
}

// staticBlock derives the context of a class static block.
func (ctx Context) staticBlock() Context {
	return ctx&inherited | ctxAllowIn | ctxSuperProperty | ctxNewTarget | ctxStaticBlock
}
