package mathcore

// symbolTable maps a LaTeX command name (without the leading
// backslash) to its static descriptor. It is built once at package
// init and never mutated afterward; every lookup during lexing is
// read-only, so conversions on different goroutines can share it
// freely.
var symbolTable = map[string]symbolDescriptor{
	// Greek letters, lowercase.
	"alpha":      {Char: 'α', Class: ClassDefault},
	"beta":       {Char: 'β', Class: ClassDefault},
	"gamma":      {Char: 'γ', Class: ClassDefault},
	"delta":      {Char: 'δ', Class: ClassDefault},
	"epsilon":    {Char: 'ε', Class: ClassDefault},
	"varepsilon": {Char: 'ɛ', Class: ClassDefault},
	"zeta":       {Char: 'ζ', Class: ClassDefault},
	"eta":        {Char: 'η', Class: ClassDefault},
	"theta":      {Char: 'θ', Class: ClassDefault},
	"vartheta":   {Char: 'ϑ', Class: ClassDefault},
	"iota":       {Char: 'ι', Class: ClassDefault},
	"kappa":      {Char: 'κ', Class: ClassDefault},
	"varkappa":   {Char: 'ϰ', Class: ClassDefault},
	"lambda":     {Char: 'λ', Class: ClassDefault},
	"mu":         {Char: 'μ', Class: ClassDefault},
	"nu":         {Char: 'ν', Class: ClassDefault},
	"xi":         {Char: 'ξ', Class: ClassDefault},
	"omicron":    {Char: 'ο', Class: ClassDefault},
	"pi":         {Char: 'π', Class: ClassDefault},
	"varpi":      {Char: 'ϖ', Class: ClassDefault},
	"rho":        {Char: 'ρ', Class: ClassDefault},
	"varrho":     {Char: 'ϱ', Class: ClassDefault},
	"sigma":      {Char: 'σ', Class: ClassDefault},
	"varsigma":   {Char: 'ς', Class: ClassDefault},
	"tau":        {Char: 'τ', Class: ClassDefault},
	"upsilon":    {Char: 'υ', Class: ClassDefault},
	"phi":        {Char: 'ϕ', Class: ClassDefault},
	"varphi":     {Char: 'φ', Class: ClassDefault},
	"chi":        {Char: 'χ', Class: ClassDefault},
	"psi":        {Char: 'ψ', Class: ClassDefault},
	"omega":      {Char: 'ω', Class: ClassDefault},
	"digamma":    {Char: 'ϝ', Class: ClassDefault},

	// Greek letters, uppercase (the ones that differ from Latin).
	"Gamma":   {Char: 'Γ', Class: ClassDefault},
	"Delta":   {Char: 'Δ', Class: ClassDefault},
	"Theta":   {Char: 'Θ', Class: ClassDefault},
	"Lambda":  {Char: 'Λ', Class: ClassDefault},
	"Xi":      {Char: 'Ξ', Class: ClassDefault},
	"Pi":      {Char: 'Π', Class: ClassDefault},
	"Sigma":   {Char: 'Σ', Class: ClassDefault},
	"Upsilon": {Char: 'Υ', Class: ClassDefault},
	"Phi":     {Char: 'Φ', Class: ClassDefault},
	"Psi":     {Char: 'Ψ', Class: ClassDefault},
	"Omega":   {Char: 'Ω', Class: ClassDefault},

	// Ordering relations.
	"leq":        {Char: '≤', Class: ClassRelation},
	"le":         {Char: '≤', Class: ClassRelation},
	"leqq":       {Char: '≦', Class: ClassRelation},
	"leqslant":   {Char: '⩽', Class: ClassRelation},
	"geq":        {Char: '≥', Class: ClassRelation},
	"ge":         {Char: '≥', Class: ClassRelation},
	"geqq":       {Char: '≧', Class: ClassRelation},
	"geqslant":   {Char: '⩾', Class: ClassRelation},
	"lneq":       {Char: '⪇', Class: ClassRelation},
	"gneq":       {Char: '⪈', Class: ClassRelation},
	"lneqq":      {Char: '≨', Class: ClassRelation},
	"gneqq":      {Char: '≩', Class: ClassRelation},
	"nless":      {Char: '≮', Class: ClassRelation},
	"ngtr":       {Char: '≯', Class: ClassRelation},
	"nleq":       {Char: '≰', Class: ClassRelation},
	"ngeq":       {Char: '≱', Class: ClassRelation},
	"lessgtr":    {Char: '≶', Class: ClassRelation},
	"gtrless":    {Char: '≷', Class: ClassRelation},
	"lesseqgtr":  {Char: '⋚', Class: ClassRelation},
	"gtreqless":  {Char: '⋛', Class: ClassRelation},
	"ll":         {Char: '≪', Class: ClassRelation},
	"gg":         {Char: '≫', Class: ClassRelation},
	"lll":        {Char: '⋘', Class: ClassRelation},
	"ggg":        {Char: '⋙', Class: ClassRelation},
	"prec":       {Char: '≺', Class: ClassRelation},
	"succ":       {Char: '≻', Class: ClassRelation},
	"preceq":     {Char: '⪯', Class: ClassRelation},
	"succeq":     {Char: '⪰', Class: ClassRelation},
	"precsim":    {Char: '≾', Class: ClassRelation},
	"succsim":    {Char: '≿', Class: ClassRelation},
	"nprec":      {Char: '⊀', Class: ClassRelation},
	"nsucc":      {Char: '⊁', Class: ClassRelation},
	"lessdot":    {Char: '⋖', Class: ClassRelation},
	"gtrdot":     {Char: '⋗', Class: ClassRelation},
	"lesssim":    {Char: '≲', Class: ClassRelation},
	"gtrsim":     {Char: '≳', Class: ClassRelation},
	"lessapprox": {Char: '⪅', Class: ClassRelation},
	"gtrapprox":  {Char: '⪆', Class: ClassRelation},

	// Equality-like relations.
	"neq":           {Char: '≠', Class: ClassRelation},
	"ne":            {Char: '≠', Class: ClassRelation},
	"equiv":         {Char: '≡', Class: ClassRelation},
	"nequiv":        {Char: '≢', Class: ClassRelation},
	"sim":           {Char: '∼', Class: ClassRelation},
	"nsim":          {Char: '≁', Class: ClassRelation},
	"simeq":         {Char: '≃', Class: ClassRelation},
	"backsim":       {Char: '∽', Class: ClassRelation},
	"approx":        {Char: '≈', Class: ClassRelation},
	"napprox":       {Char: '≉', Class: ClassRelation},
	"approxeq":      {Char: '≊', Class: ClassRelation},
	"cong":          {Char: '≅', Class: ClassRelation},
	"ncong":         {Char: '≇', Class: ClassRelation},
	"doteq":         {Char: '≐', Class: ClassRelation},
	"doteqdot":      {Char: '≑', Class: ClassRelation},
	"fallingdotseq": {Char: '≒', Class: ClassRelation},
	"risingdotseq":  {Char: '≓', Class: ClassRelation},
	"coloneqq":      {Char: '≔', Class: ClassRelation},
	"eqqcolon":      {Char: '≕', Class: ClassRelation},
	"eqcirc":        {Char: '≖', Class: ClassRelation},
	"circeq":        {Char: '≗', Class: ClassRelation},
	"triangleq":     {Char: '≜', Class: ClassRelation},
	"bumpeq":        {Char: '≏', Class: ClassRelation},
	"Bumpeq":        {Char: '≎', Class: ClassRelation},
	"propto":        {Char: '∝', Class: ClassRelation},
	"asymp":         {Char: '≍', Class: ClassRelation},

	// Set relations.
	"subset":     {Char: '⊂', Class: ClassRelation},
	"supset":     {Char: '⊃', Class: ClassRelation},
	"subseteq":   {Char: '⊆', Class: ClassRelation},
	"supseteq":   {Char: '⊇', Class: ClassRelation},
	"subsetneq":  {Char: '⊊', Class: ClassRelation},
	"supsetneq":  {Char: '⊋', Class: ClassRelation},
	"nsubseteq":  {Char: '⊈', Class: ClassRelation},
	"nsupseteq":  {Char: '⊉', Class: ClassRelation},
	"sqsubset":   {Char: '⊏', Class: ClassRelation},
	"sqsupset":   {Char: '⊐', Class: ClassRelation},
	"sqsubseteq": {Char: '⊑', Class: ClassRelation},
	"sqsupseteq": {Char: '⊒', Class: ClassRelation},
	"in":         {Char: '∈', Class: ClassRelation},
	"notin":      {Char: '∉', Class: ClassRelation},
	"ni":         {Char: '∋', Class: ClassRelation},
	"owns":       {Char: '∋', Class: ClassRelation},

	// Logic and proof relations.
	"vdash":     {Char: '⊢', Class: ClassRelation},
	"dashv":     {Char: '⊣', Class: ClassRelation},
	"nvdash":    {Char: '⊬', Class: ClassRelation},
	"models":    {Char: '⊨', Class: ClassRelation},
	"vDash":     {Char: '⊨', Class: ClassRelation},
	"nvDash":    {Char: '⊭', Class: ClassRelation},
	"Vdash":     {Char: '⊩', Class: ClassRelation},
	"nVdash":    {Char: '⊮', Class: ClassRelation},
	"Vvdash":    {Char: '⊪', Class: ClassRelation},
	"therefore": {Char: '∴', Class: ClassRelation},
	"because":   {Char: '∵', Class: ClassRelation},

	// Geometry relations.
	"mid":              {Char: '∣', Class: ClassRelation, Stretchy: StretchyPrePostfix},
	"nmid":             {Char: '∤', Class: ClassRelation},
	"parallel":         {Char: '∥', Class: ClassRelation},
	"nparallel":        {Char: '∦', Class: ClassRelation},
	"perp":             {Char: '⊥', Class: ClassRelation},
	"frown":            {Char: '⌢', Class: ClassRelation},
	"smile":            {Char: '⌣', Class: ClassRelation},
	"smallfrown":       {Char: '⌢', Class: ClassRelation},
	"smallsmile":       {Char: '⌣', Class: ClassRelation},
	"bowtie":           {Char: '⋈', Class: ClassRelation},
	"pitchfork":        {Char: '⋔', Class: ClassRelation},
	"vartriangleleft":  {Char: '⊲', Class: ClassRelation},
	"vartriangleright": {Char: '⊳', Class: ClassRelation},
	"trianglelefteq":   {Char: '⊴', Class: ClassRelation},
	"trianglerighteq":  {Char: '⊵', Class: ClassRelation},

	// Horizontal arrows. Most stretch when used as the glyph under a
	// label, but not when standing alone in a row.
	"rightarrow":         {Char: '→', Class: ClassRelation, Stretchy: StretchyInconsistent},
	"to":                 {Char: '→', Class: ClassRelation, Stretchy: StretchyInconsistent},
	"leftarrow":          {Char: '←', Class: ClassRelation, Stretchy: StretchyInconsistent},
	"gets":               {Char: '←', Class: ClassRelation, Stretchy: StretchyInconsistent},
	"leftrightarrow":     {Char: '↔', Class: ClassRelation, Stretchy: StretchyInconsistent},
	"nrightarrow":        {Char: '↛', Class: ClassRelation},
	"nleftarrow":         {Char: '↚', Class: ClassRelation},
	"nleftrightarrow":    {Char: '↮', Class: ClassRelation},
	"Rightarrow":         {Char: '⇒', Class: ClassRelation},
	"Leftarrow":          {Char: '⇐', Class: ClassRelation},
	"Leftrightarrow":     {Char: '⇔', Class: ClassRelation},
	"nRightarrow":        {Char: '⇏', Class: ClassRelation},
	"nLeftarrow":         {Char: '⇍', Class: ClassRelation},
	"nLeftrightarrow":    {Char: '⇎', Class: ClassRelation},
	"longrightarrow":     {Char: '⟶', Class: ClassRelation, Stretchy: StretchyInconsistent},
	"longleftarrow":      {Char: '⟵', Class: ClassRelation, Stretchy: StretchyInconsistent},
	"longleftrightarrow": {Char: '⟷', Class: ClassRelation, Stretchy: StretchyInconsistent},
	"Longrightarrow":     {Char: '⟹', Class: ClassRelation, Stretchy: StretchyInconsistent},
	"Longleftarrow":      {Char: '⟸', Class: ClassRelation, Stretchy: StretchyInconsistent},
	"Longleftrightarrow": {Char: '⟺', Class: ClassRelation, Stretchy: StretchyInconsistent},
	"hookrightarrow":     {Char: '↪', Class: ClassRelation, Stretchy: StretchyInconsistent},
	"hookleftarrow":      {Char: '↩', Class: ClassRelation, Stretchy: StretchyInconsistent},
	"mapsto":             {Char: '↦', Class: ClassRelation, Stretchy: StretchyInconsistent},
	"longmapsto":         {Char: '⟼', Class: ClassRelation, Stretchy: StretchyInconsistent},
	"rightharpoonup":     {Char: '⇀', Class: ClassRelation},
	"rightharpoondown":   {Char: '⇁', Class: ClassRelation},
	"leftharpoonup":      {Char: '↼', Class: ClassRelation},
	"leftharpoondown":    {Char: '↽', Class: ClassRelation},
	"rightleftharpoons":  {Char: '⇌', Class: ClassRelation},
	"leftrightharpoons":  {Char: '⇋', Class: ClassRelation},
	"rightrightarrows":   {Char: '⇉', Class: ClassRelation},
	"leftleftarrows":     {Char: '⇇', Class: ClassRelation},
	"rightleftarrows":    {Char: '⇄', Class: ClassRelation},
	"leftrightarrows":    {Char: '⇆', Class: ClassRelation},
	"twoheadrightarrow":  {Char: '↠', Class: ClassRelation},
	"twoheadleftarrow":   {Char: '↞', Class: ClassRelation},
	"rightarrowtail":     {Char: '↣', Class: ClassRelation},
	"leftarrowtail":      {Char: '↢', Class: ClassRelation},
	"curvearrowright":    {Char: '↷', Class: ClassRelation},
	"curvearrowleft":     {Char: '↶', Class: ClassRelation},
	"circlearrowright":   {Char: '↻', Class: ClassRelation},
	"circlearrowleft":    {Char: '↺', Class: ClassRelation},
	"rightsquigarrow":    {Char: '⇝', Class: ClassRelation},
	"leadsto":            {Char: '⇝', Class: ClassRelation},

	// Vertical and diagonal arrows. The vertical ones stretch on one
	// axis only, which the stretch taxonomy tags separately.
	"uparrow":     {Char: '↑', Class: ClassRelation, Stretchy: StretchyInconsistent},
	"downarrow":   {Char: '↓', Class: ClassRelation, Stretchy: StretchyInconsistent},
	"updownarrow": {Char: '↕', Class: ClassRelation, Stretchy: StretchyInconsistent},
	"Uparrow":     {Char: '⇑', Class: ClassRelation, Stretchy: StretchyInconsistent},
	"Downarrow":   {Char: '⇓', Class: ClassRelation, Stretchy: StretchyInconsistent},
	"Updownarrow": {Char: '⇕', Class: ClassRelation, Stretchy: StretchyInconsistent},
	"nearrow":     {Char: '↗', Class: ClassRelation},
	"searrow":     {Char: '↘', Class: ClassRelation},
	"swarrow":     {Char: '↙', Class: ClassRelation},
	"nwarrow":     {Char: '↖', Class: ClassRelation},

	// Binary operators, arithmetic.
	"pm":              {Char: '±', Class: ClassBinaryOp},
	"mp":              {Char: '∓', Class: ClassBinaryOp},
	"times":           {Char: '×', Class: ClassBinaryOp},
	"div":             {Char: '÷', Class: ClassBinaryOp},
	"cdot":            {Char: '⋅', Class: ClassBinaryOp},
	"cdotp":           {Char: '⋅', Class: ClassPunctuation},
	"ast":             {Char: '∗', Class: ClassBinaryOp},
	"star":            {Char: '⋆', Class: ClassBinaryOp},
	"circ":            {Char: '∘', Class: ClassBinaryOp},
	"bullet":          {Char: '∙', Class: ClassBinaryOp},
	"divideontimes":   {Char: '⋇', Class: ClassBinaryOp},
	"ltimes":          {Char: '⋉', Class: ClassBinaryOp},
	"rtimes":          {Char: '⋊', Class: ClassBinaryOp},
	"leftthreetimes":  {Char: '⋋', Class: ClassBinaryOp},
	"rightthreetimes": {Char: '⋌', Class: ClassBinaryOp},
	"dotplus":         {Char: '∔', Class: ClassBinaryOp},
	"intercal":        {Char: '⊺', Class: ClassBinaryOp},

	// Binary operators, circled and boxed.
	"oplus":       {Char: '⊕', Class: ClassBinaryOp},
	"ominus":      {Char: '⊖', Class: ClassBinaryOp},
	"otimes":      {Char: '⊗', Class: ClassBinaryOp},
	"oslash":      {Char: '⊘', Class: ClassBinaryOp},
	"odot":        {Char: '⊙', Class: ClassBinaryOp},
	"circledcirc": {Char: '⊚', Class: ClassBinaryOp},
	"circledast":  {Char: '⊛', Class: ClassBinaryOp},
	"circleddash": {Char: '⊝', Class: ClassBinaryOp},
	"boxplus":     {Char: '⊞', Class: ClassBinaryOp},
	"boxminus":    {Char: '⊟', Class: ClassBinaryOp},
	"boxtimes":    {Char: '⊠', Class: ClassBinaryOp},
	"boxdot":      {Char: '⊡', Class: ClassBinaryOp},

	// Binary operators, set and lattice.
	"cup":              {Char: '∪', Class: ClassBinaryOp},
	"cap":              {Char: '∩', Class: ClassBinaryOp},
	"Cup":              {Char: '⋓', Class: ClassBinaryOp},
	"Cap":              {Char: '⋒', Class: ClassBinaryOp},
	"uplus":            {Char: '⊎', Class: ClassBinaryOp},
	"sqcup":            {Char: '⊔', Class: ClassBinaryOp},
	"sqcap":            {Char: '⊓', Class: ClassBinaryOp},
	"setminus":         {Char: '∖', Class: ClassBinaryOp},
	"smallsetminus":    {Char: '∖', Class: ClassBinaryOp},
	"wedge":            {Char: '∧', Class: ClassBinaryOp},
	"vee":              {Char: '∨', Class: ClassBinaryOp},
	"land":             {Char: '∧', Class: ClassBinaryOp},
	"lor":              {Char: '∨', Class: ClassBinaryOp},
	"barwedge":         {Char: '⊼', Class: ClassBinaryOp},
	"veebar":           {Char: '⊻', Class: ClassBinaryOp},
	"curlywedge":       {Char: '⋏', Class: ClassBinaryOp},
	"curlyvee":         {Char: '⋎', Class: ClassBinaryOp},
	"wr":               {Char: '≀', Class: ClassBinaryOp},
	"amalg":            {Char: '⨿', Class: ClassBinaryOp},
	"triangleleft":     {Char: '◃', Class: ClassBinaryOp},
	"triangleright":    {Char: '▹', Class: ClassBinaryOp},
	"bigtriangleup":    {Char: '△', Class: ClassBinaryOp},
	"bigtriangledown":  {Char: '▽', Class: ClassBinaryOp},
	"diamond":          {Char: '⋄', Class: ClassBinaryOp},
	"dagger":           {Char: '†', Class: ClassBinaryOp},
	"ddagger":          {Char: '‡', Class: ClassBinaryOp},

	// Punctuation and dots.
	"ldots":     {Char: '…', Class: ClassPunctuation},
	"dots":      {Char: '…', Class: ClassPunctuation},
	"dotsc":     {Char: '…', Class: ClassPunctuation},
	"dotso":     {Char: '…', Class: ClassPunctuation},
	"cdots":     {Char: '⋯', Class: ClassPunctuation},
	"dotsb":     {Char: '⋯', Class: ClassPunctuation},
	"dotsi":     {Char: '⋯', Class: ClassPunctuation},
	"vdots":     {Char: '⋮', Class: ClassPunctuation},
	"ddots":     {Char: '⋱', Class: ClassPunctuation},
	"iddots":    {Char: '⋰', Class: ClassPunctuation},
	"colon":     {Char: ':', Class: ClassPunctuation},
	"prime":     {Char: '′', Class: ClassDefault},
	"backprime": {Char: '‵', Class: ClassDefault},

	// Delimiters and fences.
	"lbrace":     {Char: '{', Class: ClassOpen, Stretchy: StretchyAlways},
	"rbrace":     {Char: '}', Class: ClassClose, Stretchy: StretchyAlways},
	"{":          {Char: '{', Class: ClassOpen, Stretchy: StretchyAlways},
	"}":          {Char: '}', Class: ClassClose, Stretchy: StretchyAlways},
	"lbrack":     {Char: '[', Class: ClassOpen, Stretchy: StretchyAlways},
	"rbrack":     {Char: ']', Class: ClassClose, Stretchy: StretchyAlways},
	"langle":     {Char: '⟨', Class: ClassOpen, Stretchy: StretchyAlways},
	"rangle":     {Char: '⟩', Class: ClassClose, Stretchy: StretchyAlways},
	"lceil":      {Char: '⌈', Class: ClassOpen, Stretchy: StretchyAlways},
	"rceil":      {Char: '⌉', Class: ClassClose, Stretchy: StretchyAlways},
	"lfloor":     {Char: '⌊', Class: ClassOpen, Stretchy: StretchyAlways},
	"rfloor":     {Char: '⌋', Class: ClassClose, Stretchy: StretchyAlways},
	"lmoustache": {Char: '⎰', Class: ClassOpen, Stretchy: StretchyAlways},
	"rmoustache": {Char: '⎱', Class: ClassClose, Stretchy: StretchyAlways},
	"lgroup":     {Char: '⟮', Class: ClassOpen, Stretchy: StretchyAlways},
	"rgroup":     {Char: '⟯', Class: ClassClose, Stretchy: StretchyAlways},
	"ulcorner":   {Char: '⌜', Class: ClassOpen, Stretchy: StretchyNever},
	"urcorner":   {Char: '⌝', Class: ClassClose, Stretchy: StretchyNever},
	"llcorner":   {Char: '⌞', Class: ClassOpen, Stretchy: StretchyNever},
	"lrcorner":   {Char: '⌟', Class: ClassClose, Stretchy: StretchyNever},
	"vert":       {Char: '|', Class: ClassOpen, Stretchy: StretchyPrePostfix},
	"lvert":      {Char: '|', Class: ClassOpen, Stretchy: StretchyPrePostfix},
	"rvert":      {Char: '|', Class: ClassClose, Stretchy: StretchyPrePostfix},
	"Vert":       {Char: '‖', Class: ClassOpen, Stretchy: StretchyPrePostfix},
	"lVert":      {Char: '‖', Class: ClassOpen, Stretchy: StretchyPrePostfix},
	"rVert":      {Char: '‖', Class: ClassClose, Stretchy: StretchyPrePostfix},
	"|":          {Char: '‖', Class: ClassOpen, Stretchy: StretchyPrePostfix},
	"backslash":  {Char: '\\', Class: ClassDefault},

	// Miscellaneous symbols.
	"infty":              {Char: '∞', Class: ClassDefault},
	"partial":            {Char: '∂', Class: ClassDefault},
	"nabla":              {Char: '∇', Class: ClassDefault},
	"forall":             {Char: '∀', Class: ClassDefault},
	"exists":             {Char: '∃', Class: ClassDefault},
	"nexists":            {Char: '∄', Class: ClassDefault},
	"emptyset":           {Char: '∅', Class: ClassDefault},
	"varnothing":         {Char: '⌀', Class: ClassDefault},
	"complement":         {Char: '∁', Class: ClassDefault},
	"neg":                {Char: '¬', Class: ClassDefault},
	"lnot":               {Char: '¬', Class: ClassDefault},
	"hbar":               {Char: 'ℏ', Class: ClassDefault},
	"hslash":             {Char: 'ℏ', Class: ClassDefault},
	"ell":                {Char: 'ℓ', Class: ClassDefault},
	"wp":                 {Char: '℘', Class: ClassDefault},
	"Re":                 {Char: 'ℜ', Class: ClassDefault},
	"Im":                 {Char: 'ℑ', Class: ClassDefault},
	"aleph":              {Char: 'ℵ', Class: ClassDefault},
	"beth":               {Char: 'ℶ', Class: ClassDefault},
	"gimel":              {Char: 'ℷ', Class: ClassDefault},
	"daleth":             {Char: 'ℸ', Class: ClassDefault},
	"eth":                {Char: 'ð', Class: ClassDefault},
	"mho":                {Char: '℧', Class: ClassDefault},
	"Finv":               {Char: 'Ⅎ', Class: ClassDefault},
	"Bbbk":               {Char: '𝕜', Class: ClassDefault},
	"angle":              {Char: '∠', Class: ClassDefault},
	"measuredangle":      {Char: '∡', Class: ClassDefault},
	"sphericalangle":     {Char: '∢', Class: ClassDefault},
	"degree":             {Char: '°', Class: ClassDefault},
	"top":                {Char: '⊤', Class: ClassDefault},
	"bot":                {Char: '⊥', Class: ClassDefault},
	"flat":               {Char: '♭', Class: ClassDefault},
	"natural":            {Char: '♮', Class: ClassDefault},
	"sharp":              {Char: '♯', Class: ClassDefault},
	"clubsuit":           {Char: '♣', Class: ClassDefault},
	"diamondsuit":        {Char: '♢', Class: ClassDefault},
	"heartsuit":          {Char: '♡', Class: ClassDefault},
	"spadesuit":          {Char: '♠', Class: ClassDefault},
	"triangle":           {Char: '△', Class: ClassDefault},
	"triangledown":       {Char: '▽', Class: ClassDefault},
	"blacktriangle":      {Char: '▲', Class: ClassDefault},
	"blacktriangledown":  {Char: '▼', Class: ClassDefault},
	"blacksquare":        {Char: '■', Class: ClassDefault},
	"square":             {Char: '□', Class: ClassDefault},
	"Box":                {Char: '□', Class: ClassDefault},
	"lozenge":            {Char: '◊', Class: ClassDefault},
	"blacklozenge":       {Char: '⧫', Class: ClassDefault},
	"bigstar":            {Char: '★', Class: ClassDefault},
	"checkmark":          {Char: '✓', Class: ClassDefault},
	"maltese":            {Char: '✠', Class: ClassDefault},
	"diagup":             {Char: '╱', Class: ClassDefault},
	"diagdown":           {Char: '╲', Class: ClassDefault},
	"surd":               {Char: '√', Class: ClassDefault},
	"S":                  {Char: '§', Class: ClassDefault},
	"P":                  {Char: '¶', Class: ClassDefault},
	"copyright":          {Char: '©', Class: ClassDefault},
	"pounds":             {Char: '£', Class: ClassDefault},
	"yen":                {Char: '¥', Class: ClassDefault},
	"circledR":           {Char: '®', Class: ClassDefault},
	"circledS":           {Char: 'Ⓢ', Class: ClassDefault},

	// Escaped literals for characters that otherwise have syntactic
	// meaning.
	"$": {Char: '$', Class: ClassDefault},
	"%": {Char: '%', Class: ClassDefault},
	"&": {Char: '&', Class: ClassDefault},
	"_": {Char: '_', Class: ClassDefault},

	// ASCII aliases.
	"lt": {Char: '<', Class: ClassRelation},
	"gt": {Char: '>', Class: ClassRelation},
}

// negatedRelation maps a relation rune to the single codepoint that
// represents its \not-negated form, when Unicode defines one. Symbols
// without a negated codepoint fall back to a '/' placed over the
// relation (see parseNot).
var negatedRelation = map[rune]rune{
	'=': '≠',
	'∈': '∉',
	'∋': '∌',
	'⊂': '⊄',
	'⊆': '⊈',
	'⊃': '⊅',
	'⊇': '⊉',
	'<': '≮',
	'>': '≯',
	'≤': '≰',
	'≥': '≱',
	'≡': '≢',
	'∼': '≁',
	'≃': '≄',
	'≈': '≉',
	'≅': '≇',
	'∣': '∤',
	'∥': '∦',
	'→': '↛',
	'←': '↚',
	'↔': '↮',
	'⇒': '⇏',
	'⇐': '⇍',
	'⇔': '⇎',
	'≺': '⊀',
	'≻': '⊁',
	'⊢': '⊬',
	'⊨': '⊭',
}

// asciiClass classifies the ASCII operator characters the lexer emits
// directly (not via a named command). The hyphen-minus is replaced by
// the real minus-sign codepoint here so downstream consumers never see
// the ASCII hyphen in operator position.
var asciiClass = map[rune]symbolDescriptor{
	'+':  {Char: '+', Class: ClassBinaryOp},
	'-':  {Char: '−', Class: ClassBinaryOp},
	'*':  {Char: '∗', Class: ClassBinaryOp},
	'=':  {Char: '=', Class: ClassRelation},
	'<':  {Char: '<', Class: ClassRelation},
	'>':  {Char: '>', Class: ClassRelation},
	',':  {Char: ',', Class: ClassPunctuation},
	';':  {Char: ';', Class: ClassPunctuation},
	':':  {Char: ':', Class: ClassRelation},
	'.':  {Char: '.', Class: ClassPunctuation},
	'?':  {Char: '?', Class: ClassDefault},
	'(':  {Char: '(', Class: ClassOpen, Stretchy: StretchyAlways},
	')':  {Char: ')', Class: ClassClose, Stretchy: StretchyAlways},
	'[':  {Char: '[', Class: ClassOpen, Stretchy: StretchyAlways},
	']':  {Char: ']', Class: ClassClose, Stretchy: StretchyAlways},
	'|':  {Char: '|', Class: ClassOpen, Stretchy: StretchyPrePostfix},
	'/':  {Char: '/', Class: ClassDefault},
	'!':  {Char: '!', Class: ClassClose},
	'@':  {Char: '@', Class: ClassDefault},
	'\'': {Char: '′', Class: ClassClose},
}

// lookupSymbol returns the descriptor for a command name (without the
// leading backslash), and whether it was found.
func lookupSymbol(name string) (symbolDescriptor, bool) {
	d, ok := symbolTable[name]
	return d, ok
}
