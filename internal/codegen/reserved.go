package codegen

import "strings"

// reservedWords is the JavaScript keyword list plus the names ambient in a
// browser execution environment. Allocated identifiers must never shadow
// any of these.
var reservedWords = strings.Split(
	// https://developer.mozilla.org/en-US/docs/Web/JavaScript/Reference/Lexical_grammar#keywords
	"break,case,catch,class,const,continue,debugger,default,delete,do,"+
		"else,export,extends,finally,for,function,if,import,in,instanceof,"+
		"new,return,super,switch,this,throw,try,typeof,var,void,while,with,"+
		"yield,enum,implements,interface,let,package,private,protected,"+
		"public,static,await,null,true,false,arguments,"+
		// Everything in the current environment.
		"Array,ArrayBuffer,Boolean,DataView,Date,Error,EvalError,"+
		"Float32Array,Float64Array,Function,Infinity,Int8Array,Int16Array,"+
		"Int32Array,JSON,Map,Math,NaN,Number,Object,Promise,Proxy,"+
		"RangeError,ReferenceError,Reflect,RegExp,Set,String,Symbol,"+
		"SyntaxError,TypeError,URIError,Uint8Array,Uint8ClampedArray,"+
		"Uint16Array,Uint32Array,WeakMap,WeakSet,"+
		"decodeURI,decodeURIComponent,encodeURI,encodeURIComponent,escape,"+
		"eval,isFinite,isNaN,parseFloat,parseInt,undefined,unescape,"+
		"alert,confirm,console,document,globalThis,localStorage,location,"+
		"navigator,prompt,sessionStorage,setInterval,setTimeout,window",
	",")
