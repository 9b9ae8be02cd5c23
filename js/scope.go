package js

type bindKind int

// Binding kinds of declared names.
const (
	bindVar bindKind = iota
	bindLexical
	bindFunction    // sloppy mode function declaration in a block
	bindSimpleCatch // catch parameter that is a single identifier
)

type scopeFlags uint8

// Scope flags.
const (
	scopeTop         scopeFlags = 1 << iota
	scopeFunction               // var declarations stop here: function, arrow function or static block
	scopeSimpleCatch            // catch clause with a single identifier parameter
)

// scope records the names declared in a block or function for the redeclaration rules.
type scope struct {
	parent *scope
	flags  scopeFlags

	vars       map[string]bool
	lexical    map[string]bool
	functions  map[string]bool
	catchParam string
}

func (p *Parser) enterScope(flags scopeFlags) {
	p.scope = &scope{
		parent:    p.scope,
		flags:     flags,
		vars:      map[string]bool{},
		lexical:   map[string]bool{},
		functions: map[string]bool{},
	}
}

func (p *Parser) exitScope() {
	p.scope = p.scope.parent
}

// declared returns true if the name is declared in the scope.
func (s *scope) declared(name string) bool {
	return s.vars[name] || s.lexical[name] || s.functions[name]
}

// functionsAsVar returns true if function declarations in the scope behave as var declarations.
func (p *Parser) functionsAsVar(s *scope) bool {
	return s.flags&scopeFunction != 0 && (s.flags&scopeTop == 0 || !p.o.TreatInputAsModule)
}

// declareName adds a name to the current scope and fails if it conflicts with an earlier declaration.
func (p *Parser) declareName(name string, kind bindKind, offset int) {
	redeclared := false
	s := p.scope
	switch kind {
	case bindLexical:
		redeclared = s.lexical[name] || s.functions[name] || s.vars[name]
		s.lexical[name] = true
	case bindSimpleCatch:
		s.lexical[name] = true
		s.catchParam = name
	case bindFunction:
		if p.functionsAsVar(s) {
			redeclared = s.lexical[name]
		} else {
			redeclared = s.lexical[name] || s.vars[name]
		}
		s.functions[name] = true
	default:
		for ; s != nil; s = s.parent {
			if s.lexical[name] && !(s.flags&scopeSimpleCatch != 0 && s.catchParam == name) || !p.functionsAsVar(s) && s.functions[name] {
				redeclared = true
				break
			}
			s.vars[name] = true
			if s.flags&scopeFunction != 0 {
				break
			}
		}
	}
	if redeclared {
		p.failEarly(offset, "identifier '%s' has already been declared", name)
	}
}

// checkForOfCatchParams fails when a var declaration in a for-of head redeclares a simple catch parameter, which is
// only allowed for the other var forms.
func (p *Parser) checkForOfCatchParams(decl *VariableDeclaration) {
	for _, id := range boundNames(decl) {
		for s := p.scope; s != nil; s = s.parent {
			if s.flags&scopeSimpleCatch != 0 && s.catchParam == id.Name {
				p.failEarly(id.Start, "identifier '%s' has already been declared", id.Name)
				return
			} else if s.flags&scopeFunction != 0 {
				break
			}
		}
	}
}

////////////////////////////////////////////////////////////////

// label is an entry of the label set of the enclosing function.
type label struct {
	name      string
	loop      bool // labels an iteration statement, a valid continue target
	stmtStart int
}

////////////////////////////////////////////////////////////////

type privateKind int

// Private name kinds, a getter and a setter of the same placement may share a name.
const (
	privateField privateKind = iota
	privateMethod
	privateGetter
	privateSetter
)

type privateName struct {
	kind   privateKind
	static bool
	paired bool
}

type privateRef struct {
	name   string
	offset int
}

// privateScope holds the private names declared by a class body and the references that are resolved when the class body ends.
type privateScope struct {
	parent   *privateScope
	declared map[string]*privateName
	used     []privateRef
}

func (p *Parser) enterPrivateScope() {
	p.private = &privateScope{
		parent:   p.private,
		declared: map[string]*privateName{},
	}
}

// exitPrivateScope resolves the private names used in the class body. Names that are not declared are passed on to the
// enclosing class, or fail when there is none.
func (p *Parser) exitPrivateScope() {
	s := p.private
	p.private = s.parent
	for _, ref := range s.used {
		if _, ok := s.declared[ref.name]; ok {
			continue
		} else if s.parent != nil {
			s.parent.used = append(s.parent.used, ref)
		} else {
			p.failEarly(ref.offset, "private field '#%s' must be declared in an enclosing class", ref.name)
			return
		}
	}
}

func (p *Parser) declarePrivateName(name string, kind privateKind, static bool, offset int) {
	if name == "constructor" {
		p.failEarly(offset, "classes may not have a private field named '#constructor'")
		return
	}
	if prev, ok := p.private.declared[name]; ok {
		accessors := prev.kind == privateGetter && kind == privateSetter || prev.kind == privateSetter && kind == privateGetter
		if !accessors || prev.static != static || prev.paired {
			p.failEarly(offset, "identifier '#%s' has already been declared", name)
			return
		}
		prev.paired = true
		return
	}
	p.private.declared[name] = &privateName{kind: kind, static: static}
}

func (p *Parser) usePrivateName(name string, offset int) {
	if p.private == nil {
		p.failEarly(offset, "private field '#%s' must be declared in an enclosing class", name)
		return
	}
	p.private.used = append(p.private.used, privateRef{name, offset})
}
