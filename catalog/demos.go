// SPDX-License-Identifier: MIT

package catalog

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/patterns/abstractfactory"
	"github.com/katalvlaran/patterns/adapter"
	"github.com/katalvlaran/patterns/bridge"
	"github.com/katalvlaran/patterns/builder"
	"github.com/katalvlaran/patterns/chain"
	"github.com/katalvlaran/patterns/command"
	"github.com/katalvlaran/patterns/composite"
	"github.com/katalvlaran/patterns/decorator"
	"github.com/katalvlaran/patterns/facade"
	"github.com/katalvlaran/patterns/factory"
	"github.com/katalvlaran/patterns/interpreter"
	"github.com/katalvlaran/patterns/iterator"
	"github.com/katalvlaran/patterns/memento"
	"github.com/katalvlaran/patterns/observer"
	"github.com/katalvlaran/patterns/prototype"
	"github.com/katalvlaran/patterns/singleton"
	"github.com/katalvlaran/patterns/strategy"
	"github.com/katalvlaran/patterns/templatemethod"
)

// SingletonLookups is how many goroutines the singleton demo fans out.
const SingletonLookups = 8

var demos = []Demo{
	{
		Name: "singleton", Title: "Singleton", Category: Creational, Run: runSingleton,
		Summary: "Ensure a class has **one instance** and provide a global point of access to it.\n\n" +
			"`singleton.Instance()` uses double-checked locking: an atomic fast path and a mutex-guarded slow path.",
	},
	{
		Name: "factory", Title: "Factory", Category: Creational, Run: runFactory,
		Summary: "Create objects **without naming their concrete types**.\n\n" +
			"`ShapeFactory.GetShape` returns nil for unknown kinds; `CreateDocument` returns `ErrInvalidDocumentType`.",
	},
	{
		Name: "abstractfactory", Title: "Abstract Factory", Category: Creational, Run: runAbstractFactory,
		Summary: "Create **families of related objects** that are guaranteed to match.\n\n" +
			"A light or dark `UIFactory` produces a button and a text box of the same theme.",
	},
	{
		Name: "builder", Title: "Builder", Category: Creational, Run: runBuilder,
		Summary: "Separate the **construction** of a complex object from its representation.\n\n" +
			"A `Director` drives a `HouseBuilder` through the simple and luxury recipes.",
	},
	{
		Name: "prototype", Title: "Prototype", Category: Creational, Run: runPrototype,
		Summary: "Create new objects by **cloning** an existing instance.\n\n" +
			"Modifying a clone never affects the original; a `Registry` spawns copies by name.",
	},
	{
		Name: "adapter", Title: "Adapter", Category: Structural, Run: runAdapter,
		Summary: "Convert an interface into **another interface clients expect**.\n\n" +
			"`Adapter` wraps an `Adaptee` and exposes it as a `Target`.",
	},
	{
		Name: "bridge", Title: "Bridge", Category: Structural, Run: runBridge,
		Summary: "Decouple an **abstraction from its implementation** so both can vary.\n\n" +
			"Shapes draw through a `Renderer`, raster or vector, chosen at run time.",
	},
	{
		Name: "composite", Title: "Composite", Category: Structural, Run: runComposite,
		Summary: "Compose objects into **trees** and treat leaves and branches uniformly.\n\n" +
			"Files and directories both implement `Item`; a directory displays its children indented.",
	},
	{
		Name: "decorator", Title: "Decorator", Category: Structural, Run: runDecorator,
		Summary: "Attach **responsibilities dynamically** by wrapping an object.\n\n" +
			"Milk and sugar wrap a simple coffee, each adding to its description and cost.",
	},
	{
		Name: "facade", Title: "Facade", Category: Structural, Run: runFacade,
		Summary: "Provide **one simple interface** to a set of subsystems.\n\n" +
			"`HomeTheater` sequences the DVD player, projector and sound system.",
	},
	{
		Name: "observer", Title: "Observer", Category: Behavioral, Run: runObserver,
		Summary: "Notify **dependents automatically** when an object's state changes.\n\n" +
			"Investors registered on a stock hear about every price change until removed.",
	},
	{
		Name: "strategy", Title: "Strategy", Category: Behavioral, Run: runStrategy,
		Summary: "Define a family of **interchangeable algorithms**.\n\n" +
			"A `PaymentProcessor` pays by credit card or PayPal depending on the strategy set.",
	},
	{
		Name: "command", Title: "Command", Category: Behavioral, Run: runCommand,
		Summary: "Encapsulate a **request as an object**.\n\n" +
			"A remote control presses whatever light command is loaded into it.",
	},
	{
		Name: "iterator", Title: "Iterator", Category: Behavioral, Run: runIterator,
		Summary: "Access elements **sequentially** without exposing the underlying representation.\n\n" +
			"A book collection hands out independent iterators and a range-over-func sequence.",
	},
	{
		Name: "chain", Title: "Chain of Responsibility", Category: Behavioral, Run: runChain,
		Summary: "Pass a request **along a chain of handlers** until one handles it.\n\n" +
			"Basic, technical and billing support each handle their own type; unmatched requests are dropped.",
	},
	{
		Name: "templatemethod", Title: "Template Method", Category: Behavioral, Run: runTemplateMethod,
		Summary: "Define the **skeleton of an algorithm** and let implementations fill in steps.\n\n" +
			"XML and JSON sources supply read and parse; processing and saving are fixed.",
	},
	{
		Name: "memento", Title: "Memento", Category: Behavioral, Run: runMemento,
		Summary: "Capture and restore an object's **internal state** without breaking encapsulation.\n\n" +
			"An editor's history undoes to the most recent snapshot first.",
	},
	{
		Name: "interpreter", Title: "Interpreter", Category: Behavioral, Run: runInterpreter,
		Summary: "Represent a **grammar** and evaluate sentences in it.\n\n" +
			"Numbers, addition and subtraction form an expression tree; `Parse` builds one from text.",
	},
}

func runSingleton(ctx context.Context, env Env) error {
	n := env.narrator()
	s1 := singleton.Instance()
	s1.DoSomething(n)
	s2 := singleton.Instance()
	s2.DoSomething(n)

	if s1 == s2 {
		n.Say("Both references point to the same instance.")
	} else {
		n.Say("Different instances exist!")
	}

	seen := make([]*singleton.Singleton, SingletonLookups)
	g, gctx := errgroup.WithContext(ctx)
	for i := range SingletonLookups {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			seen[i] = singleton.Instance()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	same := 0
	for _, s := range seen {
		if s == s1 {
			same++
		}
	}
	n.Sayf("%d of %d concurrent lookups returned the same instance.", same, SingletonLookups)
	return nil
}

func runFactory(_ context.Context, env Env) error {
	n := env.narrator()
	var shapes factory.ShapeFactory
	for _, kind := range []string{"circle", "square", "rectangle"} {
		if s := shapes.GetShape(kind); s != nil {
			s.Draw(n)
		}
	}

	for _, kind := range []string{"word", "pdf", "excel", "txt"} {
		doc, err := factory.CreateDocument(kind)
		if err != nil {
			n.Sayf("error: %v", err)
			continue
		}
		doc.Open(n)
	}
	return nil
}

func runAbstractFactory(_ context.Context, env Env) error {
	theme := env.Theme
	if theme == "" {
		theme = "light"
	}
	f, err := abstractfactory.ForTheme(theme)
	if err != nil {
		return err
	}
	abstractfactory.NewClient(f).RenderUI(env.narrator())
	return nil
}

func runBuilder(_ context.Context, env Env) error {
	n := env.narrator()
	recipes := []func(*builder.Director){
		(*builder.Director).ConstructSimpleHouse,
		(*builder.Director).ConstructLuxuryHouse,
	}
	for _, construct := range recipes {
		b := builder.NewHouseBuilder()
		construct(builder.NewDirector(b))
		h, err := b.House()
		if err != nil {
			return err
		}
		n.Say(h)
	}
	return nil
}

func runPrototype(_ context.Context, env Env) error {
	n := env.narrator()
	circle := &prototype.Circle{Color: "Red", Radius: 10}
	rect := &prototype.Rectangle{Color: "Blue", Width: 20, Height: 30}

	circleCopy := circle.Clone().(*prototype.Circle)
	circleCopy.Color = "Green"
	rectCopy := rect.Clone().(*prototype.Rectangle)
	rectCopy.Width = 25

	n.Say(circle)
	n.Say(circleCopy)
	n.Say(rect)
	n.Say(rectCopy)

	reg := prototype.NewRegistry()
	reg.Register("red-circle", circle)
	spawned, err := reg.Spawn("red-circle")
	if err != nil {
		return err
	}
	n.Sayf("Spawned from registry: %s", spawned)
	return nil
}

func runAdapter(_ context.Context, env Env) error {
	var target adapter.Target = adapter.New(adapter.Adaptee{})
	env.narrator().Say(target.Request())
	return nil
}

func runBridge(_ context.Context, env Env) error {
	n := env.narrator()
	raster := bridge.NewRasterRenderer(n)
	vector := bridge.NewVectorRenderer(n)

	shapes := []bridge.Shape{bridge.NewCircle(raster, 5), bridge.NewSquare(vector, 4)}
	for _, s := range shapes {
		s.Draw()
	}
	shapes[0].SetRenderer(vector)
	shapes[0].Draw()
	return nil
}

func runComposite(_ context.Context, env Env) error {
	root := composite.NewDirectory("root")
	home := composite.NewDirectory("home")
	home.Add(composite.NewFile("photo.jpg"))
	home.Add(composite.NewFile("notes.txt"))
	root.Add(home)
	root.Add(composite.NewFile("boot.ini"))

	root.Display(env.narrator(), 1)
	return nil
}

func runDecorator(_ context.Context, env Env) error {
	n := env.narrator()
	var c decorator.Coffee = decorator.SimpleCoffee{}
	decorator.Describe(c, n)

	c = decorator.Milk(c)
	decorator.Describe(c, n)

	c = decorator.Sugar(c)
	decorator.Describe(c, n)
	return nil
}

func runFacade(_ context.Context, env Env) error {
	theater := facade.NewDefaultHomeTheater(env.narrator())
	theater.WatchMovie()
	theater.EndMovie()
	return nil
}

func runObserver(_ context.Context, env Env) error {
	n := env.narrator()
	stock := observer.NewStock("AAPL", 150.00, n.Logger())
	john := observer.NewInvestor("John Doe", n)
	jane := observer.NewInvestor("Jane Smith", n)

	stock.Register(john)
	stock.Register(jane)

	stock.SetPrice(155.00)
	stock.SetPrice(160.00)

	stock.Remove(john)
	stock.SetPrice(165.00)
	return nil
}

func runStrategy(_ context.Context, env Env) error {
	n := env.narrator()
	var p strategy.PaymentProcessor

	p.SetStrategy(strategy.NewCreditCardPayment(n))
	if err := p.Process(100.00); err != nil {
		return err
	}

	p.SetStrategy(strategy.NewPayPalPayment(n))
	return p.Process(200.00)
}

func runCommand(_ context.Context, env Env) error {
	light := command.NewLight(env.narrator())
	var remote command.RemoteControl

	remote.SetCommand(command.NewLightOnCommand(light))
	if err := remote.PressButton(); err != nil {
		return err
	}

	remote.SetCommand(command.NewLightOffCommand(light))
	return remote.PressButton()
}

func runIterator(_ context.Context, env Env) error {
	n := env.narrator()
	var books iterator.BookCollection
	books.AddBook(iterator.Book{Title: "Design Patterns"})
	books.AddBook(iterator.Book{Title: "Refactoring"})
	books.AddBook(iterator.Book{Title: "Clean Code"})

	it := books.CreateIterator()
	for it.HasNext() {
		n.Sayf("Book: %s", it.Next().Title)
	}
	return nil
}

func runChain(_ context.Context, env Env) error {
	n := env.narrator()
	opt := chain.WithLogger(n.Logger())
	head := chain.Build(
		chain.NewBasicSupportHandler(n, opt),
		chain.NewTechnicalSupportHandler(n, opt),
		chain.NewBillingSupportHandler(n, opt),
	)

	head.Handle(chain.NewRequest(chain.Basic, "Password reset"))
	head.Handle(chain.NewRequest(chain.Technical, "Server down"))
	head.Handle(chain.NewRequest(chain.Billing, "Invoice missing"))
	head.Handle(chain.NewRequest("Unknown", "Lost and found"))
	return nil
}

func runTemplateMethod(_ context.Context, env Env) error {
	templatemethod.Process(env.narrator(), templatemethod.XMLSource{})
	templatemethod.Process(env.narrator(), templatemethod.JSONSource{})
	return nil
}

func runMemento(_ context.Context, env Env) error {
	n := env.narrator()
	editor := &memento.Editor{}
	var history memento.History

	editor.Content = "State #1"
	history.Save(editor)
	editor.Content = "State #2"
	history.Save(editor)
	editor.Content = "State #3"
	n.Sayf("Current content: %s", editor.Content)

	for history.Undo(editor) {
		n.Sayf("After undo: %s", editor.Content)
	}
	n.Say("Nothing left to undo.")
	return nil
}

func runInterpreter(_ context.Context, env Env) error {
	n := env.narrator()
	// (5 + 10) - 3
	tree := interpreter.Subtract{
		Left:  interpreter.Add{Left: interpreter.Number(5), Right: interpreter.Number(10)},
		Right: interpreter.Number(3),
	}
	n.Sayf("%s = %d", tree, tree.Interpret())

	parsed, err := interpreter.Parse("10 - (3 - 2)")
	if err != nil {
		return err
	}
	n.Sayf("%s = %d", parsed, parsed.Interpret())
	return nil
}
